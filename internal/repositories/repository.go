package repositories

import "context"

// IDField names the store-assigned identifier in field lookups.
const IDField = "id"

// Repository is the persistence boundary for one collection of documents.
// Field names passed to FindOne are the JSON/BSON names of the model fields.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindOne(ctx context.Context, field string, value any) (*T, error)
	Create(ctx context.Context, doc *T) error
	Update(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) (*T, error)
}

// ArrayAppender is implemented by stores that can push onto an embedded
// array atomically. It returns the parent document after the push.
type ArrayAppender[T any] interface {
	AppendToArray(ctx context.Context, field string, value any, arrayField string, elem any) (*T, error)
}
