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
	"github.com/unistages/backend/internal/pkg/dberrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// StudentRepository handles student profile database operations.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a student profile bound to an existing account. It
// accepts a Querier so it can share the account-creation transaction.
func (r *StudentRepository) Create(ctx context.Context, q db.Querier, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "matricule", "full_name", "promotion_id", "enrollment_id").
		Values(student.UserID, student.Matricule, student.FullName, student.PromotionID, student.EnrollmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_promotion_enrollment_key") {
			return apperrors.ErrEnrollmentIDExists
		}
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrMatriculeExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.user_id", "s.matricule", "s.full_name", "s.promotion_id", "s.enrollment_id",
		"s.proposed_company1_id", "s.proposed_company2_id",
		"u.username", "u.is_active",
		"p.name", "p.academic_year", "p.department_id").
		From("students s").
		Join("users u ON u.id = s.user_id").
		LeftJoin("promotions p ON p.id = s.promotion_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{User: &models.User{}}
	var promoName, promoYear *string
	var promoDept *int64
	err := row.Scan(
		&student.UserID, &student.Matricule, &student.FullName,
		&student.PromotionID, &student.EnrollmentID,
		&student.ProposedCompany1ID, &student.ProposedCompany2ID,
		&student.User.Username, &student.User.IsActive,
		&promoName, &promoYear, &promoDept,
	)
	if err != nil {
		return nil, err
	}
	student.User.ID = student.UserID
	if student.PromotionID != nil && promoName != nil {
		student.Promotion = &models.Promotion{
			ID:           *student.PromotionID,
			DepartmentID: *promoDept,
			Name:         *promoName,
			AcademicYear: *promoYear,
		}
	}
	return student, nil
}

// GetByUserID retrieves a student with account and promotion context.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().
		Where(squirrel.Eq{"s.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetAll retrieves all students ordered by promotion and name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.selectStudents().
		OrderBy("p.academic_year DESC", "p.name ASC", "s.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update modifies a student profile. The enrollment ID and matricule
// are immutable.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("full_name", student.FullName).
		Set("promotion_id", student.PromotionID).
		Where(squirrel.Eq{"user_id": student.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEnrollmentIDExists
		}
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error updating student")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateProposals replaces the student's proposed companies. It accepts
// a Querier so the internship record can change in the same
// transaction.
func (r *StudentRepository) UpdateProposals(ctx context.Context, q db.Querier, userID int64, company1ID, company2ID *int64) error {
	sql, args, err := r.sb.Update("students").
		Set("proposed_company1_id", company1ID).
		Set("proposed_company2_id", company2ID).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update proposals query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error updating proposals")
		return fmt.Errorf("error updating proposals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// EnrollmentIDTaken reports whether an enrollment ID is already used by
// another student within the given academic year.
func (r *StudentRepository) EnrollmentIDTaken(ctx context.Context, academicYear string, enrollmentID int, excludeUserID int64) (bool, error) {
	builder := r.sb.Select("COUNT(*)").
		From("students s").
		Join("promotions p ON p.id = s.promotion_id").
		Where(squirrel.Eq{"p.academic_year": academicYear, "s.enrollment_id": enrollmentID})
	if excludeUserID > 0 {
		builder = builder.Where(squirrel.NotEq{"s.user_id": excludeUserID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment check query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking enrollment ID: %w", err)
	}
	return count > 0, nil
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
