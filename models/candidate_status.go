package models

type CandidateStatus string

const (
	CandidateStatusPending    CandidateStatus = "Pending"
	CandidateStatusHrReview   CandidateStatus = "HR_Review" // declared for compatibility, never produced
	CandidateStatusInProgress CandidateStatus = "In_Progress"
	CandidateStatusAccepted   CandidateStatus = "Accepted"
	CandidateStatusRejected   CandidateStatus = "Rejected"
)

var candidateStatusHumanName = map[CandidateStatus]string{
	CandidateStatusPending:    "Waiting for HR",
	CandidateStatusHrReview:   "HR review",
	CandidateStatusInProgress: "IT and Finance in progress",
	CandidateStatusAccepted:   "Accepted",
	CandidateStatusRejected:   "Rejected",
}

func (s CandidateStatus) ToHuman() string {
	if human, exist := candidateStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
