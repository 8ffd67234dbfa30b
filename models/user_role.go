package models

import "strings"

type UserRole string

const (
	CandidateRole UserRole = "candidate"
	HrRole        UserRole = "hr"
	ItRole        UserRole = "it"
	FinanceRole   UserRole = "finance"
	AdminRole     UserRole = "admin"
)

var roleHumanName = map[UserRole]string{
	CandidateRole: "Candidate",
	HrRole:        "HR",
	ItRole:        "IT",
	FinanceRole:   "Finance",
	AdminRole:     "Administrator",
}

// IsStaff reports whether the role may act on the approve endpoint.
func (r UserRole) IsStaff() bool {
	switch r {
	case HrRole, ItRole, FinanceRole, AdminRole:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

// ParseUserRole normalizes a client supplied role; anything unknown is treated as a candidate.
func ParseUserRole(value string) UserRole {
	role := UserRole(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := roleHumanName[role]; ok {
		return role
	}
	return CandidateRole
}
