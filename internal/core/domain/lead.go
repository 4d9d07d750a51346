package domain

import "time"

// Lead is a business inquiry submitted by a legal-entity customer.
type Lead struct {
	LeadID        string    `json:"leadID"`
	CompanyName   string    `json:"companyName"`
	INN           string    `json:"inn"` // taxpayer number, 10 or 12 digits
	ContactPerson string    `json:"contactPerson"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Telegram      string    `json:"telegram,omitempty"`
	MonthlyVolume int64     `json:"monthlyVolume"`
	Comment       string    `json:"comment,omitempty"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
