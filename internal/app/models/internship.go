package models

import "time"

// InternshipStatus tracks where an internship record sits in the
// proposal → validation → assignment → grading workflow.
type InternshipStatus string

const (
	StatusAwaitingProposal   InternshipStatus = "AWAITING_PROPOSAL"
	StatusProposalSubmitted  InternshipStatus = "PROPOSAL_SUBMITTED"
	StatusProposalValidated  InternshipStatus = "PROPOSAL_VALIDATED"
	StatusSupervisorAssigned InternshipStatus = "SUPERVISOR_ASSIGNED"
	StatusInProgress         InternshipStatus = "IN_PROGRESS"
	StatusCompleted          InternshipStatus = "COMPLETED"
	StatusCancelled          InternshipStatus = "CANCELLED"
)

// Valid reports whether s is a known status value.
func (s InternshipStatus) Valid() bool {
	switch s {
	case StatusAwaitingProposal, StatusProposalSubmitted, StatusProposalValidated,
		StatusSupervisorAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Internship is the single placement record of a student. It is created
// lazily the first time the student submits a proposal and only deleted
// by cascade when the student is deleted.
type Internship struct {
	ID                int64            `json:"id" db:"id"`
	StudentID         int64            `json:"studentId" db:"student_id"`
	SelectedCompanyID *int64           `json:"selectedCompanyId,omitempty" db:"selected_company_id"`
	SupervisorID      *int64           `json:"supervisorId,omitempty" db:"supervisor_id"`
	Status            InternshipStatus `json:"status" db:"status"`
	Grade             *int             `json:"grade,omitempty" db:"grade"` // 0-100

	ProposalSubmittedAt  *time.Time `json:"proposalSubmittedAt,omitempty" db:"proposal_submitted_at"`
	ValidatedAt          *time.Time `json:"validatedAt,omitempty" db:"validated_at"`
	SupervisorAssignedAt *time.Time `json:"supervisorAssignedAt,omitempty" db:"supervisor_assigned_at"`
	StartedAt            *time.Time `json:"startedAt,omitempty" db:"started_at"`
	EndedAt              *time.Time `json:"endedAt,omitempty" db:"ended_at"`
	GradedAt             *time.Time `json:"gradedAt,omitempty" db:"graded_at"`

	Student         *Student `json:"student,omitempty"`
	SelectedCompany *Company `json:"selectedCompany,omitempty"`
	Supervisor      *Teacher `json:"supervisor,omitempty"`
}

// IsValidated reports whether a company has been selected.
func (i *Internship) IsValidated() bool {
	return i.SelectedCompanyID != nil
}

// IsSupervisorAssigned reports whether a supervisor has been assigned.
func (i *Internship) IsSupervisorAssigned() bool {
	return i.SupervisorID != nil
}

// IsGraded reports whether a grade has been recorded.
func (i *Internship) IsGraded() bool {
	return i.Grade != nil
}

// ApplyProposal re-derives the status after the student's proposal set
// changed. It only acts while the record is in AWAITING_PROPOSAL or
// PROPOSAL_SUBMITTED: with at least one proposed company the record
// moves to PROPOSAL_SUBMITTED and the submission time is stamped; with
// all proposals withdrawn it reverts to AWAITING_PROPOSAL and the stamp
// is cleared. In any later state the proposal edit leaves the record
// untouched.
func (i *Internship) ApplyProposal(hasProposal bool, now time.Time) {
	if i.Status != StatusAwaitingProposal && i.Status != StatusProposalSubmitted {
		return
	}
	if hasProposal {
		i.Status = StatusProposalSubmitted
		i.ProposalSubmittedAt = &now
	} else {
		i.Status = StatusAwaitingProposal
		i.ProposalSubmittedAt = nil
	}
}

// CanValidate reports whether the current status allows the faculty
// validation/assignment operation.
func (i *Internship) CanValidate() bool {
	switch i.Status {
	case StatusProposalSubmitted, StatusProposalValidated, StatusSupervisorAssigned:
		return true
	}
	return false
}

// ApplyValidation re-derives the status after SelectedCompanyID and
// SupervisorID have been set by the validation operation. Callers guard
// with CanValidate first; the IN_PROGRESS branch exists for records
// whose supervisor is re-assigned after the internship started.
func (i *Internship) ApplyValidation(now time.Time) {
	switch {
	case i.SelectedCompanyID != nil && i.SupervisorID != nil:
		switch i.Status {
		case StatusProposalSubmitted:
			i.Status = StatusSupervisorAssigned
			if i.ValidatedAt == nil {
				i.ValidatedAt = &now
			}
			i.SupervisorAssignedAt = &now
		case StatusProposalValidated:
			i.Status = StatusSupervisorAssigned
			i.SupervisorAssignedAt = &now
		case StatusSupervisorAssigned, StatusInProgress:
			// Status unchanged; the assignment time reflects the latest
			// supervisor change.
			i.SupervisorAssignedAt = &now
		}
	case i.SelectedCompanyID != nil && i.SupervisorID == nil:
		if i.Status == StatusProposalSubmitted {
			i.Status = StatusProposalValidated
			i.ValidatedAt = &now
		}
	}
}

// ApplyGrade records a grade. The status is forced to COMPLETED when
// not already there, and the grading time is stamped on every grade
// submission, including re-grades.
func (i *Internship) ApplyGrade(grade int, now time.Time) {
	i.Grade = &grade
	if i.Status != StatusCompleted {
		i.Status = StatusCompleted
	}
	i.GradedAt = &now
}
