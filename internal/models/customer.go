package models

// LineItem is embedded in Invoice.lineItems.
type LineItem struct {
	Name     string  `json:"name" bson:"name" validate:"required"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"gte=0"`
}

// Invoice is embedded in Customer.invoices and has no identity of its own.
type Invoice struct {
	Subtotal    float64    `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Tax         float64    `json:"tax" bson:"tax" validate:"gte=0"`
	DateCreated string     `json:"dateCreated" bson:"dateCreated" validate:"required"`
	DateShipped string     `json:"dateShipped" bson:"dateShipped"`
	LineItems   []LineItem `json:"lineItems" bson:"lineItems" validate:"omitempty,dive"`
}

// Customer is looked up by UserName for all invoice operations.
type Customer struct {
	Base      `bson:",inline"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	UserName  string    `json:"userName" bson:"userName" gorm:"index;type:varchar(100)"`
	Invoices  []Invoice `json:"invoices" bson:"invoices" gorm:"serializer:json;type:text"`
}

func (Customer) TableName() string { return "customers" }
