package models

import "time"

// Document is implemented by every top-level entity stored in its own collection.
type Document interface {
	GetID() string
	SetID(id string)
	TableName() string
}

// DocumentPtr constrains a pointer to T that satisfies Document.
type DocumentPtr[T any] interface {
	*T
	Document
}

// Base carries the store-assigned identifier shared by all top-level documents.
type Base struct {
	ID        string    `json:"id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"-" bson:"-" gorm:"autoCreateTime"`
}

func (b *Base) GetID() string   { return b.ID }
func (b *Base) SetID(id string) { b.ID = id }
