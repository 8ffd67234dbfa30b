package candidate

import (
	"net/mail"
	"onboarding-backend/lib/apperr"
	"onboarding-backend/models"
	candidateapimodels "onboarding-backend/models/api/candidate"
	dbmodels "onboarding-backend/models/db"
	"strings"
	"time"
)

func canDecideHr(role models.UserRole) bool {
	return role == models.HrRole || role == models.AdminRole
}

func canDecideIt(role models.UserRole) bool {
	return role == models.ItRole || role == models.AdminRole
}

func canDecideFinance(role models.UserRole) bool {
	return role == models.FinanceRole || role == models.AdminRole
}

// ApplyApproval applies the decision blocks the role is entitled to, in HR, IT, Finance
// order, and returns the updated copy with a recomputed status. The input record is never
// modified, so a failed call leaves nothing half-applied.
func ApplyApproval(rec dbmodels.Candidate, role models.UserRole, data candidateapimodels.ApproveRequest, now time.Time) (dbmodels.Candidate, error) {
	if !role.IsStaff() {
		return rec, apperr.NewAuthorization("Not authorized to update candidate.")
	}
	if data.HrApproval != nil && canDecideHr(role) {
		if err := applyHrDecision(&rec, *data.HrApproval, now); err != nil {
			return rec, err
		}
	}
	if data.ItApproval != nil && canDecideIt(role) {
		if err := applyItDecision(&rec, *data.ItApproval); err != nil {
			return rec, err
		}
	}
	if data.FinanceApproval != nil && canDecideFinance(role) {
		if err := applyFinanceDecision(&rec, *data.FinanceApproval); err != nil {
			return rec, err
		}
	}
	rec.Status = rec.DeriveStatus()
	return rec, nil
}

func applyHrDecision(rec *dbmodels.Candidate, data candidateapimodels.HrApprovalData, now time.Time) error {
	if data.Approved == nil {
		return apperr.NewValidation("HR approval flag is required.")
	}
	approved := *data.Approved
	comment := strings.TrimSpace(data.Comment)
	if !approved && comment == "" {
		return apperr.NewValidation("Rejection comment is required.")
	}
	decidedAt := now
	rec.HrApproval = dbmodels.HrApproval{
		Approved:  approved,
		Comment:   comment,
		DecidedAt: &decidedAt,
	}
	if !approved {
		rec.ItApproval.AccessCreated = false
		rec.FinanceApproval.DocsVerified = false
	}
	return nil
}

func applyItDecision(rec *dbmodels.Candidate, data candidateapimodels.ItApprovalData) error {
	if !rec.HrApproval.Approved {
		return apperr.NewPrecondition("HR approval required before IT review.")
	}
	if data.AccessCreated == nil {
		return apperr.NewValidation("IT approval flag is required.")
	}
	corporateEmail := strings.ToLower(strings.TrimSpace(data.CorporateEmail))
	if *data.AccessCreated && corporateEmail == "" {
		return apperr.NewValidation("Corporate email is required.")
	}
	if corporateEmail != "" {
		if _, err := mail.ParseAddress(corporateEmail); err != nil {
			return apperr.NewValidation("Corporate email has invalid format.")
		}
		rec.ItApproval.CorporateEmail = corporateEmail
	}
	rec.ItApproval.AccessCreated = *data.AccessCreated
	return nil
}

func applyFinanceDecision(rec *dbmodels.Candidate, data candidateapimodels.FinanceApprovalData) error {
	if !rec.HrApproval.Approved {
		return apperr.NewPrecondition("HR approval required before Finance review.")
	}
	if data.DocsVerified == nil {
		return apperr.NewValidation("Finance approval flag is required.")
	}
	rec.FinanceApproval.DocsVerified = *data.DocsVerified
	return nil
}

// applySubmission overwrites the profile; a rejected application goes back to HR.
func applySubmission(rec *dbmodels.Candidate, data candidateapimodels.SubmitRequest) {
	rec.FullName = data.FullName
	rec.Email = data.Email
	rec.Phone = data.Phone
	rec.BankDetails = dbmodels.BankDetails{
		IBAN:     data.BankDetails.IBAN,
		BankName: data.BankDetails.BankName,
		BIC:      data.BankDetails.BIC,
	}
	rec.Documents = append([]string{}, data.Documents...)
	if rec.DeriveStatus() == models.CandidateStatusRejected {
		rec.HrApproval.DecidedAt = nil
	}
	rec.Status = rec.DeriveStatus()
}
