package repository

import (
	"context"
)

// OwnedRepository is the tenant-scoped CRUD contract shared by every entity
// kind. Every method that resolves rows takes the owner id and applies it as
// a mandatory filter; a row belonging to another owner behaves exactly like
// a row that does not exist.
type OwnedRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, ownerID, id uint) (*T, error)
	Update(ctx context.Context, entity *T) error
	Count(ctx context.Context, ownerID uint) (int64, error)
}

// ListOptions carries the ANDed filters and sorting for list queries. Only
// the fields meaningful for an entity kind are consulted by its repository.
type ListOptions struct {
	NameContains string
	CategoryID   *uint
	ContainerID  *uint
	IsIn         *bool
	SortBy       string
	SortDesc     bool
	Limit        int
	Offset       int
}

// sortColumns is the allow-list of sortable columns. Anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func orderClause(opts ListOptions) string {
	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = "created_at"
	}
	if opts.SortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}
