package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/db"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// InternshipService defines the placement workflow operations.
type InternshipService interface {
	SubmitProposal(ctx context.Context, studentUserID int64, req *dto.ProposalRequest) (*models.Internship, error)
	ValidateAndAssign(ctx context.Context, internshipID int64, req *dto.ValidationRequest) (*models.Internship, error)
	Grade(ctx context.Context, supervisorUserID, internshipID int64, req *dto.GradeRequest) (*models.Internship, error)
	OverrideStatus(ctx context.Context, internshipID int64, req *dto.StatusOverrideRequest) (*models.Internship, error)
	GetByStudent(ctx context.Context, studentUserID int64) (*models.Internship, error)
	GetAll(ctx context.Context) ([]*models.Internship, error)
	GetBySupervisor(ctx context.Context, supervisorUserID int64) ([]*models.Internship, error)
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type internshipServiceImpl struct {
	internshipRepo *repositories.InternshipRepository
	studentRepo    *repositories.StudentRepository
	teacherRepo    *repositories.TeacherRepository
	companyRepo    *repositories.CompanyRepository
	pool           *pgxpool.Pool
}

// NewInternshipService creates a new InternshipService.
func NewInternshipService(
	internshipRepo *repositories.InternshipRepository,
	studentRepo *repositories.StudentRepository,
	teacherRepo *repositories.TeacherRepository,
	companyRepo *repositories.CompanyRepository,
	pool *pgxpool.Pool,
) InternshipService {
	return &internshipServiceImpl{
		internshipRepo: internshipRepo,
		studentRepo:    studentRepo,
		teacherRepo:    teacherRepo,
		companyRepo:    companyRepo,
		pool:           pool,
	}
}

// SubmitProposal records the student's proposed companies and moves the
// internship record accordingly. Submitting with no companies withdraws
// a pending proposal. The internship record is created on first
// submission.
func (s *internshipServiceImpl) SubmitProposal(ctx context.Context, studentUserID int64, req *dto.ProposalRequest) (*models.Internship, error) {
	_, err := s.studentRepo.GetByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	if req.Company1ID != nil && req.Company2ID != nil && *req.Company1ID == *req.Company2ID {
		return nil, apperrors.ErrIdenticalProposals
	}
	for _, companyID := range []*int64{req.Company1ID, req.Company2ID} {
		if companyID == nil {
			continue
		}
		if _, err := s.companyRepo.GetByID(ctx, *companyID); err != nil {
			return nil, err
		}
	}

	hasProposal := req.Company1ID != nil || req.Company2ID != nil

	internship, err := s.internshipRepo.GetByStudentID(ctx, studentUserID)
	if err != nil && !errors.Is(err, apperrors.ErrInternshipNotFound) {
		return nil, err
	}

	now := time.Now()
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.UpdateProposals(ctx, tx, studentUserID, req.Company1ID, req.Company2ID); err != nil {
			return err
		}

		if internship == nil {
			internship = &models.Internship{
				StudentID: studentUserID,
				Status:    models.StatusAwaitingProposal,
			}
			id, err := s.internshipRepo.Create(ctx, tx, internship)
			if err != nil {
				return err
			}
			internship.ID = id
		}

		internship.ApplyProposal(hasProposal, now)
		return s.internshipRepo.Update(ctx, tx, internship)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentUserID).
		Bool("hasProposal", hasProposal).
		Str("status", string(internship.Status)).
		Msg("Proposal recorded")
	return s.internshipRepo.GetByStudentID(ctx, studentUserID)
}

// ValidateAndAssign selects one of the student's proposed companies
// and, when a supervisor is given, assigns it in the same step.
func (s *internshipServiceImpl) ValidateAndAssign(ctx context.Context, internshipID int64, req *dto.ValidationRequest) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.CanValidate() {
		return nil, apperrors.ErrInvalidStatusForAction
	}
	if !internship.Student.HasProposed(req.CompanyID) {
		return nil, apperrors.ErrCompanyNotProposed
	}
	if req.SupervisorID != nil {
		if _, err := s.teacherRepo.GetByUserID(ctx, *req.SupervisorID); err != nil {
			return nil, err
		}
	}

	internship.SelectedCompanyID = &req.CompanyID
	internship.SupervisorID = req.SupervisorID
	internship.ApplyValidation(time.Now())

	if err := s.internshipRepo.Update(ctx, s.pool, internship); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("internshipID", internshipID).
		Int64("companyID", req.CompanyID).
		Str("status", string(internship.Status)).
		Msg("Internship validated")
	return s.internshipRepo.GetByID(ctx, internshipID)
}

// Grade records the supervisor's grade and completes the internship.
// Only the assigned supervisor may grade; re-grading is allowed and
// re-stamps the grading time.
func (s *internshipServiceImpl) Grade(ctx context.Context, supervisorUserID, internshipID int64, req *dto.GradeRequest) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if internship.SupervisorID == nil || *internship.SupervisorID != supervisorUserID {
		return nil, apperrors.ErrNotSupervisor
	}
	if internship.Status == models.StatusCancelled {
		return nil, apperrors.ErrInvalidStatusForAction
	}
	if req.Grade == nil || *req.Grade < 0 || *req.Grade > 100 {
		return nil, apperrors.ErrGradeOutOfRange
	}

	internship.ApplyGrade(*req.Grade, time.Now())
	if err := s.internshipRepo.Update(ctx, s.pool, internship); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("internshipID", internshipID).
		Int64("supervisorID", supervisorUserID).
		Int("grade", *req.Grade).
		Msg("Internship graded")
	return s.internshipRepo.GetByID(ctx, internshipID)
}

// OverrideStatus sets the status directly. This is the only path to
// CANCELLED; timestamps are left untouched.
func (s *internshipServiceImpl) OverrideStatus(ctx context.Context, internshipID int64, req *dto.StatusOverrideRequest) (*models.Internship, error) {
	status := models.InternshipStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Status))
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	internship.Status = status
	if err := s.internshipRepo.Update(ctx, s.pool, internship); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("internshipID", internshipID).
		Str("status", string(status)).
		Msg("Internship status overridden")
	return s.internshipRepo.GetByID(ctx, internshipID)
}

func (s *internshipServiceImpl) GetByStudent(ctx context.Context, studentUserID int64) (*models.Internship, error) {
	return s.internshipRepo.GetByStudentID(ctx, studentUserID)
}

func (s *internshipServiceImpl) GetAll(ctx context.Context) ([]*models.Internship, error) {
	return s.internshipRepo.GetAll(ctx)
}

func (s *internshipServiceImpl) GetBySupervisor(ctx context.Context, supervisorUserID int64) ([]*models.Internship, error) {
	return s.internshipRepo.GetBySupervisor(ctx, supervisorUserID)
}

// Dashboard aggregates the faculty overview counters.
func (s *internshipServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	submitted, err := s.internshipRepo.CountByStatus(ctx, models.StatusProposalSubmitted)
	if err != nil {
		return nil, err
	}
	assigned, err := s.internshipRepo.CountByStatus(ctx, models.StatusSupervisorAssigned)
	if err != nil {
		return nil, err
	}
	completed, err := s.internshipRepo.CountByStatus(ctx, models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalStudents:        students,
		TotalTeachers:        teachers,
		TotalCompanies:       companies,
		ProposalsSubmitted:   submitted,
		SupervisorsAssigned:  assigned,
		InternshipsCompleted: completed,
	}, nil
}
