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

// TeacherRepository handles teacher profile database operations.
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a teacher profile bound to an existing account. It
// accepts a Querier so it can share the account-creation transaction.
func (r *TeacherRepository) Create(ctx context.Context, q db.Querier, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("user_id", "matricule", "full_name", "department_id").
		Values(teacher.UserID, teacher.Matricule, teacher.FullName, teacher.DepartmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrMatriculeExists
		}
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

func (r *TeacherRepository) selectTeachers() squirrel.SelectBuilder {
	return r.sb.Select(
		"t.user_id", "t.matricule", "t.full_name", "t.department_id",
		"u.username", "u.is_active",
		"d.name", "d.code").
		From("teachers t").
		Join("users u ON u.id = t.user_id").
		LeftJoin("departments d ON d.id = t.department_id")
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{User: &models.User{}}
	var deptName, deptCode *string
	err := row.Scan(
		&teacher.UserID, &teacher.Matricule, &teacher.FullName, &teacher.DepartmentID,
		&teacher.User.Username, &teacher.User.IsActive,
		&deptName, &deptCode,
	)
	if err != nil {
		return nil, err
	}
	teacher.User.ID = teacher.UserID
	if teacher.DepartmentID != nil && deptName != nil {
		teacher.Department = &models.Department{
			ID:   *teacher.DepartmentID,
			Name: *deptName,
			Code: *deptCode,
		}
	}
	return teacher, nil
}

// GetByUserID retrieves a teacher with account and department context.
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	sql, args, err := r.selectTeachers().
		Where(squirrel.Eq{"t.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	return teacher, nil
}

// GetAll retrieves all teachers ordered by name.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.selectTeachers().
		OrderBy("t.full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

// Update modifies a teacher profile. The matricule is immutable.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		Set("full_name", teacher.FullName).
		Set("department_id", teacher.DepartmentID).
		Where(squirrel.Eq{"user_id": teacher.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", teacher.UserID).Msg("Error updating teacher")
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Count returns the number of teachers.
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM teachers").Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
