package entities

import "time"

// Company is a client organisation meetings are held with
type Company struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"type:varchar(255);not null"`
	Address   string           `json:"address" gorm:"type:text;not null;default:''"`
	Contacts  []CompanyContact `json:"contacts" gorm:"foreignKey:CompanyID"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// CompanyContact is a person at a company. Contacts are replaced wholesale
// whenever the company is updated, so their IDs are not stable across edits.
type CompanyContact struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CompanyID   uint   `json:"company_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"type:varchar(255);not null;default:''"`
	Designation string `json:"designation" gorm:"type:varchar(255);not null;default:''"`
	Phone       string `json:"phone" gorm:"type:varchar(50);not null;default:''"`
	Email       string `json:"email" gorm:"type:varchar(255);not null;default:''"`
}

// TableName overrides the table name used by CompanyContact
func (CompanyContact) TableName() string {
	return "company_contacts"
}

// AttachContacts points every contact at the given company and clears stale IDs
func AttachContacts(companyID uint, contacts []CompanyContact) []CompanyContact {
	out := make([]CompanyContact, len(contacts))
	for i, c := range contacts {
		c.ID = 0
		c.CompanyID = companyID
		out[i] = c
	}
	return out
}
