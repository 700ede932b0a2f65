package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/dberrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// DepartmentRepository handles department database operations.
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new department.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("faculty_id", "name", "code").
		Values(department.FacultyID, department.Name, department.Code).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrDepartmentExists
		}
		logger.Error().Err(err).Msg("Error executing create department query")
		return 0, fmt.Errorf("error creating department: %w", err)
	}
	return id, nil
}

// GetByID retrieves a department with its faculty.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(
		"d.id", "d.faculty_id", "d.name", "d.code",
		"f.id", "f.name", "f.code").
		From("departments d").
		Join("faculties f ON f.id = d.faculty_id").
		Where(squirrel.Eq{"d.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{Faculty: &models.Faculty{}}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&department.ID, &department.FacultyID, &department.Name, &department.Code,
		&department.Faculty.ID, &department.Faculty.Name, &department.Faculty.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}
	return department, nil
}

// GetAll retrieves all departments with their faculties.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select(
		"d.id", "d.faculty_id", "d.name", "d.code",
		"f.id", "f.name", "f.code").
		From("departments d").
		Join("faculties f ON f.id = d.faculty_id").
		OrderBy("f.name ASC", "d.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{Faculty: &models.Faculty{}}
		err := rows.Scan(
			&department.ID, &department.FacultyID, &department.Name, &department.Code,
			&department.Faculty.ID, &department.Faculty.Name, &department.Faculty.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}

// Update modifies a department.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("faculty_id", department.FacultyID).
		Set("name", department.Name).
		Set("code", department.Code).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDepartmentExists
		}
		logger.Error().Err(err).Int64("departmentID", department.ID).Msg("Error updating department")
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Delete removes a department. Departments with promotions or teachers
// cannot be deleted.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	for _, table := range []string{"promotions", "teachers"} {
		countSQL, countArgs, err := r.sb.Select("COUNT(*)").
			From(table).
			Where(squirrel.Eq{"department_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build %s count query: %w", table, err)
		}

		var count int64
		if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&count); err != nil {
			return fmt.Errorf("error counting %s: %w", table, err)
		}
		if count > 0 {
			return apperrors.ErrDepartmentHasRelations
		}
	}

	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error deleting department")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
