package entities

// Person is immutable reference data. gorm maps it to the "people" table.
type Person struct {
	ID        uint   `gorm:"primaryKey" json:"id" yaml:"-"`
	Name      string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name" yaml:"name"`
	Height    string `gorm:"type:varchar(120);not null" json:"height" yaml:"height"`
	Mass      string `gorm:"type:varchar(120);not null" json:"mass" yaml:"mass"`
	HairColor string `gorm:"type:varchar(120);not null" json:"hair_color" yaml:"hair_color"`
}
