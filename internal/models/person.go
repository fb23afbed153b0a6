package models

// Role is embedded in Person.roles.
type Role struct {
	Text string `json:"text" bson:"text"`
}

// Dependent is embedded in Person.dependents.
type Dependent struct {
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
}

// Person represents a document in the persons collection.
type Person struct {
	Base       `bson:",inline"`
	FirstName  string      `json:"firstName" bson:"firstName"`
	LastName   string      `json:"lastName" bson:"lastName"`
	Roles      []Role      `json:"roles" bson:"roles" gorm:"serializer:json;type:text"`
	Dependents []Dependent `json:"dependents" bson:"dependents" gorm:"serializer:json;type:text"`
	BirthDate  string      `json:"birthDate" bson:"birthDate"`
}

func (Person) TableName() string { return "persons" }
