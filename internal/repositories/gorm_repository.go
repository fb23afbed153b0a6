package repositories

import (
	"context"
	"errors"

	"github.com/JojerDojer/web-420/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRepository is a GORM implementation of Repository. Embedded arrays are
// persisted as JSON columns, so every write rewrites the whole document row.
type GORMRepository[T any, PT models.DocumentPtr[T]] struct {
	db         *gorm.DB
	collection string
}

// NewGORMRepository creates a new instance of GORMRepository.
func NewGORMRepository[T any, PT models.DocumentPtr[T]](db *gorm.DB) *GORMRepository[T, PT] {
	var zero T
	return &GORMRepository[T, PT]{
		db:         db,
		collection: PT(&zero).TableName(),
	}
}

// FindAll retrieves all documents in creation order.
func (r *GORMRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	docs := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&docs).Error; err != nil {
		return nil, storeErr("find", r.collection, err)
	}
	return docs, nil
}

// FindByID retrieves a single document by its ID.
func (r *GORMRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, IDField, id)
}

// FindOne retrieves the first document whose field equals value.
func (r *GORMRepository[T, PT]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	doc := new(T)
	column := r.db.NamingStrategy.ColumnName("", field)
	err := r.db.WithContext(ctx).Order("created_at, id").Where(map[string]any{column: value}).First(doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.collection, field, value)
		}
		return nil, storeErr("findOne", r.collection, err)
	}
	return doc, nil
}

// Create inserts a new document.
func (r *GORMRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	if PT(doc).GetID() == "" {
		PT(doc).SetID(uuid.New().String())
	}
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return storeErr("insert", r.collection, err)
	}
	return nil
}

// Update rewrites every column of an existing document.
func (r *GORMRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	id := PT(doc).GetID()
	res := r.db.WithContext(ctx).Model(doc).Select("*").Omit("created_at").Where("id = ?", id).Updates(doc)
	if res.Error != nil {
		return storeErr("replace", r.collection, res.Error)
	}
	// Save would insert a missing row, so a zero count means the id is unknown.
	if res.RowsAffected == 0 {
		return notFound(r.collection, IDField, id)
	}
	return nil
}

// Delete removes a document by its ID and returns the removed row.
func (r *GORMRepository[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	var removed *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc := new(T)
		if err := tx.First(doc, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(doc).Error; err != nil {
			return err
		}
		removed = doc
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.collection, IDField, id)
		}
		return nil, storeErr("delete", r.collection, err)
	}
	return removed, nil
}
