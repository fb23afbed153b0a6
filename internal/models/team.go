package models

// Player is embedded in Team.players.
type Player struct {
	FirstName string  `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string  `json:"lastName" bson:"lastName" validate:"required"`
	Salary    float64 `json:"salary" bson:"salary" validate:"gte=0"`
}

// Team owns an ordered roster of players.
type Team struct {
	Base    `bson:",inline"`
	Name    string   `json:"name" bson:"name"`
	Mascot  string   `json:"mascot" bson:"mascot"`
	Players []Player `json:"players" bson:"players" gorm:"serializer:json;type:text"`
}

func (Team) TableName() string { return "teams" }
