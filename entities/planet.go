package entities

// Planet is immutable reference data, loaded by the seed command.
type Planet struct {
	ID             uint   `gorm:"primaryKey" json:"id" yaml:"-"`
	Name           string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name" yaml:"name"`
	Description    string `gorm:"type:varchar(255);not null" json:"description" yaml:"description"`
	Climate        string `gorm:"type:varchar(120);not null" json:"climate" yaml:"climate"`
	Population     string `gorm:"type:varchar(120);not null" json:"population" yaml:"population"`
	OrbitalPeriod  string `gorm:"type:varchar(120);not null" json:"orbital_period" yaml:"orbital_period"`
	RotationPeriod string `gorm:"type:varchar(120);not null" json:"rotation_period" yaml:"rotation_period"`
	Diameter       string `gorm:"type:varchar(120);not null" json:"diameter" yaml:"diameter"`
}
