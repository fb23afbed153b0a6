package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/JojerDojer/web-420/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryRepository is an in-memory implementation of Repository.
// Documents are held as BSON so callers never share slices with the store.
type MemoryRepository[T any, PT models.DocumentPtr[T]] struct {
	collection string
	docs       map[string][]byte
	order      []string
	mu         sync.RWMutex
}

// NewMemoryRepository creates a new, empty MemoryRepository.
func NewMemoryRepository[T any, PT models.DocumentPtr[T]]() *MemoryRepository[T, PT] {
	var zero T
	return &MemoryRepository[T, PT]{
		collection: PT(&zero).TableName(),
		docs:       make(map[string][]byte),
	}
}

// FindAll returns every document in insertion order.
func (r *MemoryRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]T, 0, len(r.order))
	for _, id := range r.order {
		doc, err := r.decode(r.docs[id])
		if err != nil {
			return nil, storeErr("find", r.collection, err)
		}
		list = append(list, *doc)
	}
	return list, nil
}

// FindByID returns the document with the given id.
func (r *MemoryRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.docs[id]
	if !ok {
		return nil, notFound(r.collection, IDField, id)
	}
	doc, err := r.decode(raw)
	if err != nil {
		return nil, storeErr("findById", r.collection, err)
	}
	return doc, nil
}

// FindOne returns the first document, in insertion order, whose field equals value.
func (r *MemoryRepository[T, PT]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := field
	if field == IDField {
		key = "_id"
	}
	for _, id := range r.order {
		var m bson.M
		if err := bson.Unmarshal(r.docs[id], &m); err != nil {
			return nil, storeErr("findOne", r.collection, err)
		}
		if m[key] == value {
			return r.decode(r.docs[id])
		}
	}
	return nil, notFound(r.collection, field, value)
}

// Create stores a new document, assigning an id when none is set.
func (r *MemoryRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := PT(doc)
	if p.GetID() == "" {
		p.SetID(uuid.New().String())
	}
	if _, exists := r.docs[p.GetID()]; exists {
		return storeErr("insert", r.collection, fmt.Errorf("duplicate id %s", p.GetID()))
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return storeErr("insert", r.collection, err)
	}
	r.docs[p.GetID()] = raw
	r.order = append(r.order, p.GetID())
	return nil
}

// Update replaces an existing document as a whole.
func (r *MemoryRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := PT(doc).GetID()
	if _, ok := r.docs[id]; !ok {
		return notFound(r.collection, IDField, id)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return storeErr("replace", r.collection, err)
	}
	r.docs[id] = raw
	return nil
}

// Delete removes a document and returns it.
func (r *MemoryRepository[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.docs[id]
	if !ok {
		return nil, notFound(r.collection, IDField, id)
	}
	doc, err := r.decode(raw)
	if err != nil {
		return nil, storeErr("delete", r.collection, err)
	}
	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return doc, nil
}

func (r *MemoryRepository[T, PT]) decode(raw []byte) (*T, error) {
	doc := new(T)
	if err := bson.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
