package models

// Planet corresponds to the 'planets' table.
type Planet struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Galaxy      string `gorm:"size:120;not null" json:"galaxy"`
	Population  int64  `gorm:"not null" json:"population"`
	Gravity     string `gorm:"size:40;not null" json:"gravity"`
	Image       string `gorm:"not null" json:"image"`
}

// TableName explicitly sets the table name for GORM.
func (Planet) TableName() string {
	return "planets"
}
