package company

// ContactRequest is one contact row of a company form
type ContactRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// CompanyRequest is used for both create and update. On update the contact
// list replaces the stored one.
type CompanyRequest struct {
	Name     string           `json:"name" validate:"required"`
	Address  string           `json:"address"`
	Contacts []ContactRequest `json:"contacts"`
}
