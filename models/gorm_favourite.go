package models

// FavouritePlanet marks a planet as a favorite of a user. The composite unique
// index is what keeps a (user, planet) pair from being stored twice, even when
// two requests race past the existence check.
type FavouritePlanet struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favourite_planet_user_planet" json:"user_id"`
	PlanetID uint `gorm:"not null;uniqueIndex:idx_favourite_planet_user_planet" json:"planet_id"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Planet *Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (FavouritePlanet) TableName() string {
	return "favourite_planet"
}

// FavouritePeople marks a person as a favorite of a user, with the same
// uniqueness rule as FavouritePlanet.
type FavouritePeople struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favourite_people_user_people" json:"user_id"`
	PeopleID uint `gorm:"not null;uniqueIndex:idx_favourite_people_user_people" json:"people_id"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Person *Person `gorm:"foreignKey:PeopleID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (FavouritePeople) TableName() string {
	return "favourite_people"
}
