// README: Parking area aggregate: a named rate plan.
package area

import (
	"errors"

	"parkfee/internal/types"
)

// Area couples a name with its rate plan. Rate1 is the weekday hourly rate,
// Rate2 the weekend hourly rate, Discount a percentage in [0,100]. The field
// names follow the wire contract.
type Area struct {
	ID       types.ID
	Name     string
	Rate1    float64
	Rate2    float64
	Discount float64
}

var (
	ErrNotFound   = errors.New("area not found")
	ErrBadRequest = errors.New("bad request")
)

// Validate enforces the numeric boundary rules at the repository layer;
// the fee engine assumes any plan it receives already satisfies them.
func (a Area) Validate() error {
	switch {
	case a.Name == "":
		return ErrBadRequest
	case a.Rate1 < 0 || a.Rate2 < 0:
		return ErrBadRequest
	case a.Discount < 0 || a.Discount > 100:
		return ErrBadRequest
	}
	return nil
}
