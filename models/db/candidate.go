package dbmodels

import (
	"onboarding-backend/models"
	"time"

	"github.com/lib/pq"
)

type Candidate struct {
	BaseModel
	Email           string                 `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash    string                 `gorm:"type:varchar(128)"`
	FullName        string                 `gorm:"type:varchar(255)"`
	Phone           string                 `gorm:"type:varchar(50)"`
	BankDetails     BankDetails            `gorm:"embedded;embeddedPrefix:bank_"`
	Documents       pq.StringArray         `gorm:"type:text[]"`
	Status          models.CandidateStatus `gorm:"type:varchar(20);index"`
	HrApproval      HrApproval             `gorm:"embedded;embeddedPrefix:hr_"`
	ItApproval      ItApproval             `gorm:"embedded;embeddedPrefix:it_"`
	FinanceApproval FinanceApproval        `gorm:"embedded;embeddedPrefix:finance_"`
}

type BankDetails struct {
	IBAN     string `gorm:"column:iban;type:varchar(64)"`
	BankName string `gorm:"type:varchar(255)"`
	BIC      string `gorm:"column:bic;type:varchar(32)"`
}

type HrApproval struct {
	Approved bool
	Comment  string
	// set when HR made an explicit decision, cleared when a rejected candidate resubmits
	DecidedAt *time.Time
}

type ItApproval struct {
	AccessCreated  bool
	CorporateEmail string `gorm:"type:varchar(255)"`
}

type FinanceApproval struct {
	DocsVerified bool
}

// DeriveStatus computes the lifecycle stage from the three approval blocks.
func (c Candidate) DeriveStatus() models.CandidateStatus {
	switch {
	case c.HrApproval.Approved && c.ItApproval.AccessCreated && c.FinanceApproval.DocsVerified:
		return models.CandidateStatusAccepted
	case !c.HrApproval.Approved && c.HrApproval.DecidedAt != nil:
		return models.CandidateStatusRejected
	case c.HrApproval.Approved:
		return models.CandidateStatusInProgress
	}
	return models.CandidateStatusPending
}
