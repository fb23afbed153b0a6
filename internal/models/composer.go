package models

// Composer is a flat document in the composers collection.
type Composer struct {
	Base      `bson:",inline"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

func (Composer) TableName() string { return "composers" }
