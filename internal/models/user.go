package models

// EmailAddress is one entry of User.emailAddress.
type EmailAddress struct {
	Email string `json:"email" bson:"email"`
}

// User is a registered account. Password only ever holds the bcrypt hash.
type User struct {
	Base         `bson:",inline"`
	UserName     string         `json:"userName" bson:"userName" gorm:"index;type:varchar(100)"`
	Password     string         `json:"-" bson:"password" gorm:"type:varchar(255)"` // never serialized
	EmailAddress []EmailAddress `json:"emailAddress" bson:"emailAddress" gorm:"serializer:json;type:text"`
}

func (User) TableName() string { return "users" }
