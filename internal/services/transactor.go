package services

import "context"

// Transactor runs a unit of work in one database transaction.
// A transaction already carried by ctx is joined instead of nested.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
