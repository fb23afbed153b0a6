package repositories

import (
	"context"
	"errors"

	"github.com/JojerDojer/web-420/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores one model type in a MongoDB collection.
type MongoRepository[T any, PT models.DocumentPtr[T]] struct {
	coll *mongo.Collection
}

// NewMongoRepository binds a repository to the model's collection in db.
func NewMongoRepository[T any, PT models.DocumentPtr[T]](db *mongo.Database) *MongoRepository[T, PT] {
	var zero T
	return &MongoRepository[T, PT]{coll: db.Collection(PT(&zero).TableName())}
}

func (r *MongoRepository[T, PT]) name() string { return r.coll.Name() }

func bsonField(field string) string {
	if field == IDField {
		return "_id"
	}
	return field
}

// FindAll returns every document in natural order.
func (r *MongoRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeErr("find", r.name(), err)
	}
	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("find", r.name(), err)
	}
	return docs, nil
}

// FindByID returns the document whose _id matches id.
func (r *MongoRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, IDField, id)
}

// FindOne returns the first document whose field equals value.
func (r *MongoRepository[T, PT]) FindOne(ctx context.Context, field string, value any) (*T, error) {
	doc := new(T)
	err := r.coll.FindOne(ctx, bson.M{bsonField(field): value}).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(r.name(), field, value)
		}
		return nil, storeErr("findOne", r.name(), err)
	}
	return doc, nil
}

// Create inserts doc, assigning an ObjectID hex string as its id.
func (r *MongoRepository[T, PT]) Create(ctx context.Context, doc *T) error {
	if PT(doc).GetID() == "" {
		PT(doc).SetID(primitive.NewObjectID().Hex())
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("insert", r.name(), err)
	}
	return nil
}

// Update replaces the stored document as a whole.
func (r *MongoRepository[T, PT]) Update(ctx context.Context, doc *T) error {
	id := PT(doc).GetID()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return storeErr("replace", r.name(), err)
	}
	if res.MatchedCount == 0 {
		return notFound(r.name(), IDField, id)
	}
	return nil
}

// Delete removes the document and returns what was stored.
func (r *MongoRepository[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	doc := new(T)
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(r.name(), IDField, id)
		}
		return nil, storeErr("delete", r.name(), err)
	}
	return doc, nil
}

// AppendToArray pushes elem onto arrayField of the first document matching
// field=value in a single server-side operation.
func (r *MongoRepository[T, PT]) AppendToArray(ctx context.Context, field string, value any, arrayField string, elem any) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	doc := new(T)
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{bsonField(field): value},
		bson.M{"$push": bson.M{arrayField: elem}},
		opts,
	).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(r.name(), field, value)
		}
		return nil, storeErr("push", r.name(), err)
	}
	return doc, nil
}

// EnsureIndexes creates the lookup index on field for this collection.
func (r *MongoRepository[T, PT]) EnsureIndexes(ctx context.Context, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	idx := make([]mongo.IndexModel, 0, len(fields))
	for _, f := range fields {
		idx = append(idx, mongo.IndexModel{Keys: bson.D{{Key: f, Value: 1}}})
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, idx); err != nil {
		return storeErr("createIndexes", r.name(), err)
	}
	return nil
}
