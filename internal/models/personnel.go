package models

import "gorm.io/gorm"

// Personnel is a field worker who can be bound to at most one active
// complaint at a time. Available flips to false while bound and back to true
// when the complaint resolves; the bind itself is a conditional update so two
// concurrent assignments cannot both claim the same person.
type Personnel struct {
	gorm.Model

	Name      string `gorm:"not null" json:"name"`
	Contact   string `gorm:"not null" json:"contact"`
	Role      string `gorm:"not null" json:"role"`
	Available bool   `gorm:"not null;default:true" json:"available"`
}
