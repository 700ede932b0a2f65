package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestApplyProposal_SubmitStampsTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	i := &Internship{Status: StatusAwaitingProposal}

	i.ApplyProposal(true, now)

	assert.Equal(t, StatusProposalSubmitted, i.Status)
	require.NotNil(t, i.ProposalSubmittedAt)
	assert.Equal(t, now, *i.ProposalSubmittedAt)
}

func TestApplyProposal_WithdrawAllReverts(t *testing.T) {
	submitted := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	i := &Internship{Status: StatusProposalSubmitted, ProposalSubmittedAt: &submitted}

	i.ApplyProposal(false, submitted.Add(time.Hour))

	assert.Equal(t, StatusAwaitingProposal, i.Status)
	assert.Nil(t, i.ProposalSubmittedAt)
}

func TestApplyProposal_NoOpInLaterStates(t *testing.T) {
	for _, status := range []InternshipStatus{
		StatusProposalValidated,
		StatusSupervisorAssigned,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			stamped := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			i := &Internship{Status: status, ProposalSubmittedAt: &stamped}

			i.ApplyProposal(false, stamped.Add(time.Hour))

			assert.Equal(t, status, i.Status)
			assert.Equal(t, &stamped, i.ProposalSubmittedAt)
		})
	}
}

func TestApplyValidation_SubmittedToAssigned(t *testing.T) {
	now := time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC)
	i := &Internship{
		Status:            StatusProposalSubmitted,
		SelectedCompanyID: int64Ptr(7),
		SupervisorID:      int64Ptr(3),
	}

	i.ApplyValidation(now)

	assert.Equal(t, StatusSupervisorAssigned, i.Status)
	require.NotNil(t, i.ValidatedAt)
	require.NotNil(t, i.SupervisorAssignedAt)
	assert.Equal(t, now, *i.ValidatedAt)
	assert.Equal(t, now, *i.SupervisorAssignedAt)
}

func TestApplyValidation_SubmittedToAssignedKeepsEarlierValidation(t *testing.T) {
	earlier := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	now := earlier.Add(24 * time.Hour)
	i := &Internship{
		Status:            StatusProposalSubmitted,
		SelectedCompanyID: int64Ptr(7),
		SupervisorID:      int64Ptr(3),
		ValidatedAt:       &earlier,
	}

	i.ApplyValidation(now)

	assert.Equal(t, StatusSupervisorAssigned, i.Status)
	assert.Equal(t, earlier, *i.ValidatedAt)
	assert.Equal(t, now, *i.SupervisorAssignedAt)
}

func TestApplyValidation_ValidatedToAssigned(t *testing.T) {
	validated := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	now := validated.Add(48 * time.Hour)
	i := &Internship{
		Status:            StatusProposalValidated,
		SelectedCompanyID: int64Ptr(7),
		SupervisorID:      int64Ptr(3),
		ValidatedAt:       &validated,
	}

	i.ApplyValidation(now)

	assert.Equal(t, StatusSupervisorAssigned, i.Status)
	assert.Equal(t, validated, *i.ValidatedAt)
	assert.Equal(t, now, *i.SupervisorAssignedAt)
}

func TestApplyValidation_ReassignKeepsStatus(t *testing.T) {
	for _, status := range []InternshipStatus{StatusSupervisorAssigned, StatusInProgress} {
		t.Run(string(status), func(t *testing.T) {
			old := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
			now := old.Add(time.Hour)
			i := &Internship{
				Status:               status,
				SelectedCompanyID:    int64Ptr(7),
				SupervisorID:         int64Ptr(9),
				SupervisorAssignedAt: &old,
			}

			i.ApplyValidation(now)

			assert.Equal(t, status, i.Status)
			assert.Equal(t, now, *i.SupervisorAssignedAt)
		})
	}
}

func TestApplyValidation_CompanyOnlyValidates(t *testing.T) {
	now := time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC)
	i := &Internship{
		Status:            StatusProposalSubmitted,
		SelectedCompanyID: int64Ptr(7),
	}

	i.ApplyValidation(now)

	assert.Equal(t, StatusProposalValidated, i.Status)
	require.NotNil(t, i.ValidatedAt)
	assert.Equal(t, now, *i.ValidatedAt)
	assert.Nil(t, i.SupervisorAssignedAt)
}

func TestCanValidate(t *testing.T) {
	allowed := map[InternshipStatus]bool{
		StatusAwaitingProposal:   false,
		StatusProposalSubmitted:  true,
		StatusProposalValidated:  true,
		StatusSupervisorAssigned: true,
		StatusInProgress:         false,
		StatusCompleted:          false,
		StatusCancelled:          false,
	}
	for status, want := range allowed {
		i := &Internship{Status: status}
		assert.Equal(t, want, i.CanValidate(), "status %s", status)
	}
}

func TestApplyGrade_ForcesCompleted(t *testing.T) {
	now := time.Date(2025, 7, 1, 16, 0, 0, 0, time.UTC)
	i := &Internship{Status: StatusSupervisorAssigned}

	i.ApplyGrade(85, now)

	assert.Equal(t, StatusCompleted, i.Status)
	require.NotNil(t, i.Grade)
	assert.Equal(t, 85, *i.Grade)
	require.NotNil(t, i.GradedAt)
	assert.Equal(t, now, *i.GradedAt)
}

func TestApplyGrade_RegradeRestamps(t *testing.T) {
	first := time.Date(2025, 7, 1, 16, 0, 0, 0, time.UTC)
	second := first.Add(72 * time.Hour)
	i := &Internship{Status: StatusSupervisorAssigned}

	i.ApplyGrade(60, first)
	i.ApplyGrade(75, second)

	assert.Equal(t, StatusCompleted, i.Status)
	assert.Equal(t, 75, *i.Grade)
	assert.Equal(t, second, *i.GradedAt)
}

// Full workflow: propose → validate+assign → grade.
func TestWorkflowScenario(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	i := &Internship{Status: StatusAwaitingProposal}

	i.ApplyProposal(true, t0)
	assert.Equal(t, StatusProposalSubmitted, i.Status)

	i.SelectedCompanyID = int64Ptr(1)
	i.SupervisorID = int64Ptr(2)
	t1 := t0.Add(24 * time.Hour)
	require.True(t, i.CanValidate())
	i.ApplyValidation(t1)
	assert.Equal(t, StatusSupervisorAssigned, i.Status)
	assert.Equal(t, t1, *i.ValidatedAt)
	assert.Equal(t, t1, *i.SupervisorAssignedAt)

	t2 := t1.Add(30 * 24 * time.Hour)
	i.ApplyGrade(85, t2)
	assert.Equal(t, StatusCompleted, i.Status)
	assert.Equal(t, 85, *i.Grade)
	assert.Equal(t, t2, *i.GradedAt)
	// Proposal stamp from the first step survives the whole workflow.
	assert.Equal(t, t0, *i.ProposalSubmittedAt)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusAwaitingProposal.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, InternshipStatus("DRAFT").Valid())
}

func TestStudentProposedCompanies(t *testing.T) {
	s := &Student{}
	assert.Empty(t, s.ProposedCompanyIDs())
	assert.False(t, s.HasProposed(1))

	s.ProposedCompany1ID = int64Ptr(1)
	s.ProposedCompany2ID = int64Ptr(4)
	assert.Equal(t, []int64{1, 4}, s.ProposedCompanyIDs())
	assert.True(t, s.HasProposed(4))
	assert.False(t, s.HasProposed(9))
}
