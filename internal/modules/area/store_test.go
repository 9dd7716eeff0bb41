// README: Store error-mapping tests (no database required).
package area

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

// A missing row must surface as ErrNotFound so the HTTP layer can answer 404;
// pgx's QueryRow.Scan reports it as pgx.ErrNoRows.
func TestScanErrNoRows(t *testing.T) {
	if got := scanErr(pgx.ErrNoRows); got != ErrNotFound {
		t.Fatalf("scanErr(pgx.ErrNoRows) = %v, want ErrNotFound", got)
	}
	wrapped := fmt.Errorf("get area: %w", pgx.ErrNoRows)
	if got := scanErr(wrapped); got != ErrNotFound {
		t.Fatalf("scanErr(wrapped no-rows) = %v, want ErrNotFound", got)
	}
}

func TestScanErrPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	if got := scanErr(boom); got != boom {
		t.Fatalf("scanErr(%v) = %v, want the error unchanged", boom, got)
	}
	if got := scanErr(nil); got != nil {
		t.Fatalf("scanErr(nil) = %v, want nil", got)
	}
}
