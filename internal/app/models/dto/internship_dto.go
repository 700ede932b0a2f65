package dto

// ProposalRequest carries a student's internship proposals. Submitting
// with no companies withdraws any previous proposal.
type ProposalRequest struct {
	Company1ID *int64 `json:"company1Id,omitempty"`
	Company2ID *int64 `json:"company2Id,omitempty"`
}

// ValidationRequest carries the faculty validation/assignment decision.
// The company must be one the student proposed; the supervisor is
// optional (company-only validation).
type ValidationRequest struct {
	CompanyID    int64  `json:"companyId" binding:"required,min=1"`
	SupervisorID *int64 `json:"supervisorId,omitempty"`
}

// GradeRequest carries the supervisor's grade, on a 0-100 scale.
type GradeRequest struct {
	Grade *int `json:"grade" binding:"required"`
}

// StatusOverrideRequest carries a manual status change, the only path
// to CANCELLED.
type StatusOverrideRequest struct {
	Status string `json:"status" binding:"required"`
}

// DashboardResponse aggregates the counters shown on the faculty
// dashboard.
type DashboardResponse struct {
	TotalStudents        int64 `json:"totalStudents"`
	TotalTeachers        int64 `json:"totalTeachers"`
	TotalCompanies       int64 `json:"totalCompanies"`
	ProposalsSubmitted   int64 `json:"proposalsSubmitted"`
	SupervisorsAssigned  int64 `json:"supervisorsAssigned"`
	InternshipsCompleted int64 `json:"internshipsCompleted"`
}
