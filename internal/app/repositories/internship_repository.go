package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/db"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// InternshipRepository handles internship record database operations.
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository.
func NewInternshipRepository(pool *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an internship record for a student. It accepts a
// Querier so creation can share the caller's transaction.
func (r *InternshipRepository) Create(ctx context.Context, q db.Querier, internship *models.Internship) (int64, error) {
	sql, args, err := r.sb.Insert("internships").
		Columns("student_id", "status").
		Values(internship.StudentID, internship.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create internship query: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", internship.StudentID).Msg("Error executing create internship query")
		return 0, fmt.Errorf("error creating internship: %w", err)
	}
	return id, nil
}

func (r *InternshipRepository) selectInternships() squirrel.SelectBuilder {
	return r.sb.Select(
		"i.id", "i.student_id", "i.selected_company_id", "i.supervisor_id",
		"i.status", "i.grade",
		"i.proposal_submitted_at", "i.validated_at", "i.supervisor_assigned_at",
		"i.started_at", "i.ended_at", "i.graded_at",
		"s.matricule", "s.full_name", "s.promotion_id",
		"s.proposed_company1_id", "s.proposed_company2_id",
		"p.name", "p.academic_year",
		"c.name", "sup.full_name").
		From("internships i").
		Join("students s ON s.user_id = i.student_id").
		LeftJoin("promotions p ON p.id = s.promotion_id").
		LeftJoin("companies c ON c.id = i.selected_company_id").
		LeftJoin("teachers sup ON sup.user_id = i.supervisor_id")
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	internship := &models.Internship{Student: &models.Student{}}
	var promoName, promoYear, companyName, supervisorName *string
	err := row.Scan(
		&internship.ID, &internship.StudentID,
		&internship.SelectedCompanyID, &internship.SupervisorID,
		&internship.Status, &internship.Grade,
		&internship.ProposalSubmittedAt, &internship.ValidatedAt, &internship.SupervisorAssignedAt,
		&internship.StartedAt, &internship.EndedAt, &internship.GradedAt,
		&internship.Student.Matricule, &internship.Student.FullName, &internship.Student.PromotionID,
		&internship.Student.ProposedCompany1ID, &internship.Student.ProposedCompany2ID,
		&promoName, &promoYear,
		&companyName, &supervisorName,
	)
	if err != nil {
		return nil, err
	}
	internship.Student.UserID = internship.StudentID
	if internship.Student.PromotionID != nil && promoName != nil {
		internship.Student.Promotion = &models.Promotion{
			ID:           *internship.Student.PromotionID,
			Name:         *promoName,
			AcademicYear: *promoYear,
		}
	}
	if internship.SelectedCompanyID != nil && companyName != nil {
		internship.SelectedCompany = &models.Company{
			ID:   *internship.SelectedCompanyID,
			Name: *companyName,
		}
	}
	if internship.SupervisorID != nil && supervisorName != nil {
		internship.Supervisor = &models.Teacher{
			UserID:   *internship.SupervisorID,
			FullName: *supervisorName,
		}
	}
	return internship, nil
}

// GetByID retrieves an internship with student, company and supervisor
// context.
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.selectInternships().
		Where(squirrel.Eq{"i.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	internship, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error scanning internship row")
		return nil, fmt.Errorf("error getting internship by ID: %w", err)
	}
	return internship, nil
}

// GetByStudentID retrieves the student's internship record, if any.
func (r *InternshipRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Internship, error) {
	sql, args, err := r.selectInternships().
		Where(squirrel.Eq{"i.student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship by student query: %w", err)
	}

	internship, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error scanning internship row")
		return nil, fmt.Errorf("error getting internship by student: %w", err)
	}
	return internship, nil
}

// GetAll retrieves all internships with context, ordered by academic
// year then student name.
func (r *InternshipRepository) GetAll(ctx context.Context) ([]*models.Internship, error) {
	sql, args, err := r.selectInternships().
		OrderBy("p.academic_year DESC", "s.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all internships query: %w", err)
	}
	return r.queryInternships(ctx, sql, args)
}

// GetBySupervisor retrieves internships assigned to a supervisor.
func (r *InternshipRepository) GetBySupervisor(ctx context.Context, supervisorID int64) ([]*models.Internship, error) {
	sql, args, err := r.selectInternships().
		Where(squirrel.Eq{"i.supervisor_id": supervisorID}).
		OrderBy("p.academic_year DESC", "s.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internships by supervisor query: %w", err)
	}
	return r.queryInternships(ctx, sql, args)
}

// GetAssignedForReport retrieves internships with an assigned
// supervisor awaiting start, ordered for the assignment report.
func (r *InternshipRepository) GetAssignedForReport(ctx context.Context) ([]*models.Internship, error) {
	sql, args, err := r.selectInternships().
		Where(squirrel.Eq{"i.status": models.StatusSupervisorAssigned}).
		OrderBy("p.academic_year ASC", "p.name ASC", "s.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}
	return r.queryInternships(ctx, sql, args)
}

func (r *InternshipRepository) queryInternships(ctx context.Context, sql string, args []interface{}) ([]*models.Internship, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing internships query")
		return nil, fmt.Errorf("error querying internships: %w", err)
	}
	defer rows.Close()

	internships := []*models.Internship{}
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning internship row: %w", err)
		}
		internships = append(internships, internship)
	}
	return internships, rows.Err()
}

// Update persists the mutable fields of an internship record. It
// accepts a Querier so workflow changes can share a transaction with
// proposal updates.
func (r *InternshipRepository) Update(ctx context.Context, q db.Querier, internship *models.Internship) error {
	sql, args, err := r.sb.Update("internships").
		Set("selected_company_id", internship.SelectedCompanyID).
		Set("supervisor_id", internship.SupervisorID).
		Set("status", internship.Status).
		Set("grade", internship.Grade).
		Set("proposal_submitted_at", internship.ProposalSubmittedAt).
		Set("validated_at", internship.ValidatedAt).
		Set("supervisor_assigned_at", internship.SupervisorAssignedAt).
		Set("started_at", internship.StartedAt).
		Set("ended_at", internship.EndedAt).
		Set("graded_at", internship.GradedAt).
		Where(squirrel.Eq{"id": internship.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update internship query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", internship.ID).Msg("Error updating internship")
		return fmt.Errorf("error updating internship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// CountByStatus returns the number of internships in the given status.
func (r *InternshipRepository) CountByStatus(ctx context.Context, status models.InternshipStatus) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("internships").
		Where(squirrel.Eq{"status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count by status query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}
