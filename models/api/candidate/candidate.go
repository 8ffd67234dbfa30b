package candidateapimodels

import (
	"onboarding-backend/lib/apperr"
	"onboarding-backend/models"
	dbmodels "onboarding-backend/models/db"
	"strings"
	"time"
)

type BankDetails struct {
	IBAN     string `json:"iban"`
	BankName string `json:"bankName"`
	BIC      string `json:"bic"`
}

func (b BankDetails) trimmed() BankDetails {
	return BankDetails{
		IBAN:     strings.TrimSpace(b.IBAN),
		BankName: strings.TrimSpace(b.BankName),
		BIC:      strings.TrimSpace(b.BIC),
	}
}

// SubmitRequest is the candidate application form.
type SubmitRequest struct {
	CandidateID string       `json:"candidateId"`
	FullName    string       `json:"fullName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	BankDetails *BankDetails `json:"bankDetails"`
	Documents   []string     `json:"documents"`
}

func (r SubmitRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" || strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Phone) == "" {
		return apperr.NewValidation("Full name, email, and phone are required.")
	}
	if r.BankDetails == nil {
		return apperr.NewValidation("Complete bank details are required.")
	}
	bank := r.BankDetails.trimmed()
	if bank.IBAN == "" || bank.BankName == "" || bank.BIC == "" {
		return apperr.NewValidation("Complete bank details are required.")
	}
	if len(r.Documents) == 0 {
		return apperr.NewValidation("At least one document is required.")
	}
	for _, doc := range r.Documents {
		if strings.TrimSpace(doc) == "" {
			return apperr.NewValidation("Document name must not be empty.")
		}
	}
	return nil
}

// Normalized returns a copy with trimmed fields and a lowercase email.
func (r SubmitRequest) Normalized() SubmitRequest {
	out := SubmitRequest{
		CandidateID: strings.TrimSpace(r.CandidateID),
		FullName:    strings.TrimSpace(r.FullName),
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:       strings.TrimSpace(r.Phone),
		Documents:   make([]string, 0, len(r.Documents)),
	}
	if r.BankDetails != nil {
		bank := r.BankDetails.trimmed()
		out.BankDetails = &bank
	}
	for _, doc := range r.Documents {
		out.Documents = append(out.Documents, strings.TrimSpace(doc))
	}
	return out
}

type HrApprovalData struct {
	Approved *bool  `json:"approved"`
	Comment  string `json:"comment"`
}

type ItApprovalData struct {
	AccessCreated  *bool  `json:"accessCreated"`
	CorporateEmail string `json:"corporateEmail"`
}

type FinanceApprovalData struct {
	DocsVerified *bool `json:"docsVerified"`
}

// ApproveRequest carries zero or more department decisions.
type ApproveRequest struct {
	HrApproval      *HrApprovalData      `json:"hrApproval"`
	ItApproval      *ItApprovalData      `json:"itApproval"`
	FinanceApproval *FinanceApprovalData `json:"financeApproval"`
}

type ListFilter struct {
	Actor       Actor
	CandidateID string
}

type HrApprovalView struct {
	Approved  bool       `json:"approved"`
	Comment   string     `json:"comment"`
	DecidedAt *time.Time `json:"decidedAt,omitempty"`
}

type ItApprovalView struct {
	AccessCreated  bool   `json:"accessCreated"`
	CorporateEmail string `json:"corporateEmail"`
}

type FinanceApprovalView struct {
	DocsVerified bool `json:"docsVerified"`
}

// CandidateView is the only shape a candidate leaves the service in; it has no credential field.
type CandidateView struct {
	ID              string                 `json:"id"`
	FullName        string                 `json:"fullName"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	BankDetails     *BankDetails           `json:"bankDetails,omitempty"`
	Documents       []string               `json:"documents"`
	Status          models.CandidateStatus `json:"status"`
	HrApproval      HrApprovalView         `json:"hrApproval"`
	ItApproval      ItApprovalView         `json:"itApproval"`
	FinanceApproval FinanceApprovalView    `json:"financeApproval"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// CandidateConvert builds the view for the given reader; IT never receives bank details.
func CandidateConvert(rec dbmodels.Candidate, role models.UserRole) CandidateView {
	view := CandidateView{
		ID:        rec.ID,
		FullName:  rec.FullName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Documents: []string(rec.Documents),
		Status:    rec.DeriveStatus(),
		HrApproval: HrApprovalView{
			Approved:  rec.HrApproval.Approved,
			Comment:   rec.HrApproval.Comment,
			DecidedAt: rec.HrApproval.DecidedAt,
		},
		ItApproval: ItApprovalView{
			AccessCreated:  rec.ItApproval.AccessCreated,
			CorporateEmail: rec.ItApproval.CorporateEmail,
		},
		FinanceApproval: FinanceApprovalView{
			DocsVerified: rec.FinanceApproval.DocsVerified,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if view.Documents == nil {
		view.Documents = []string{}
	}
	if role != models.ItRole {
		view.BankDetails = &BankDetails{
			IBAN:     rec.BankDetails.IBAN,
			BankName: rec.BankDetails.BankName,
			BIC:      rec.BankDetails.BIC,
		}
	}
	return view
}

type DocumentUploadResponse struct {
	Name string `json:"name"`
}

// Actor is the verified (or, in legacy mode, client asserted) caller.
type Actor struct {
	Role models.UserRole
	// SubjectID is the token subject; empty when the role came from ?role= / x-role.
	SubjectID string
}

// IsBoundCandidate reports a candidate whose identity comes from a verified token.
func (a Actor) IsBoundCandidate() bool {
	return a.Role == models.CandidateRole && a.SubjectID != ""
}

// CanAccessCandidate reports whether a candidate caller may touch the given record.
// Staff may; a token-bound candidate only its own record.
func (a Actor) CanAccessCandidate(candidateID string) bool {
	if !a.IsBoundCandidate() {
		return true
	}
	return a.SubjectID == candidateID
}
