package models

// Person is a character of the catalog. It corresponds to the 'people' table.
// PlanetOfBirth is stored and serialized as the raw value the client sent; it is
// not a reference into 'planets'.
type Person struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"size:120;not null" json:"name"`
	Age           int     `gorm:"not null" json:"age"`
	Gender        string  `gorm:"size:40;not null" json:"gender"`
	Height        float64 `gorm:"not null" json:"height"`
	Weight        float64 `gorm:"not null" json:"weight"`
	Image         string  `gorm:"not null" json:"image"`
	PlanetOfBirth string  `gorm:"size:120;not null" json:"planet_of_birth"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}
