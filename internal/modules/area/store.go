// README: Area store backed by PostgreSQL.
package area

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parkfee/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, a *Area) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO areas (id, name, rate1, rate2, discount)
		VALUES ($1, $2, $3, $4, $5)`,
		string(a.ID), a.Name, a.Rate1, a.Rate2, a.Discount,
	)
	return err
}

func (s *Store) List(ctx context.Context) ([]Area, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, rate1, rate2, discount
		FROM areas
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []Area
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.ID, &a.Name, &a.Rate1, &a.Rate2, &a.Discount); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Area, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, rate1, rate2, discount
		FROM areas
		WHERE id = $1`, string(id),
	)

	var a Area
	if err := row.Scan(&a.ID, &a.Name, &a.Rate1, &a.Rate2, &a.Discount); err != nil {
		return nil, scanErr(err)
	}
	return &a, nil
}

// scanErr maps pgx's no-rows sentinel to ErrNotFound. pgx returns its own
// pgx.ErrNoRows from QueryRow.Scan, not database/sql's.
func scanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Store) Update(ctx context.Context, a Area) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE areas
		SET name = $1, rate1 = $2, rate2 = $3, discount = $4
		WHERE id = $5`,
		a.Name, a.Rate1, a.Rate2, a.Discount, string(a.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM areas WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
