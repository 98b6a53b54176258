package models

import "gorm.io/gorm"

// Student is a trainee owned by exactly one partner. Students are never
// reassigned between partners.
type Student struct {
	gorm.Model
	PartnerID uint   `json:"partner_id" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone"`
	Cpf       string `json:"cpf"` // taxpayer id
	Address   string `json:"address"`
}
