package availability

import "context"

// Type is an availability category ("OFFICE", "REMOTE", "SICK", ...).
// Code is the stable key used by cross-cutting filters; ID is the foreign
// key requests and schedule blocks reference.
type Type struct {
	ID        int64   `json:"type_id"`
	Code      string  `json:"code"`
	Label     string  `json:"label"`
	ColorHex  string  `json:"color_hex"`
	IconClass *string `json:"icon_class,omitempty"`
	SortOrder int     `json:"sort_order"`
}

// TypeRepository - interface for the availability_types table
type TypeRepository interface {
	GetAll(ctx context.Context) ([]Type, error)
	GetByCode(ctx context.Context, code string) (Type, error)
}

// Service lists the availability type catalog.
type Service interface {
	Types(ctx context.Context) ([]Type, error)
}
