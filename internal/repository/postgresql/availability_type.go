package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/availability"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type availabilityTypeRepositoryImpl struct {
	db *database.DB
}

func NewAvailabilityTypeRepository(db *database.DB) availability.TypeRepository {
	return &availabilityTypeRepositoryImpl{db: db}
}

func (r *availabilityTypeRepositoryImpl) GetAll(ctx context.Context) ([]availability.Type, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, color_hex, icon_class, sort_order
		FROM availability_types
		ORDER BY sort_order, label
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []availability.Type
	for rows.Next() {
		var t availability.Type
		if err := rows.Scan(&t.ID, &t.Code, &t.Label, &t.ColorHex, &t.IconClass, &t.SortOrder); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *availabilityTypeRepositoryImpl) GetByCode(ctx context.Context, code string) (availability.Type, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, color_hex, icon_class, sort_order
		FROM availability_types
		WHERE code = $1
	`
	var t availability.Type
	err := q.QueryRow(ctx, query, code).Scan(&t.ID, &t.Code, &t.Label, &t.ColorHex, &t.IconClass, &t.SortOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return availability.Type{}, availability.ErrTypeNotFound
	}
	if err != nil {
		return availability.Type{}, err
	}
	return t, nil
}
