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

// PromotionRepository handles promotion database operations.
type PromotionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new promotion.
func (r *PromotionRepository) Create(ctx context.Context, promotion *models.Promotion) (int64, error) {
	sql, args, err := r.sb.Insert("promotions").
		Columns("department_id", "name", "academic_year").
		Values(promotion.DepartmentID, promotion.Name, promotion.AcademicYear).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create promotion query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrPromotionExists
		}
		logger.Error().Err(err).Msg("Error executing create promotion query")
		return 0, fmt.Errorf("error creating promotion: %w", err)
	}
	return id, nil
}

// GetByID retrieves a promotion with its department and faculty. The
// full chain is needed to build student matricules.
func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*models.Promotion, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.department_id", "p.name", "p.academic_year",
		"d.id", "d.faculty_id", "d.name", "d.code",
		"f.id", "f.name", "f.code").
		From("promotions p").
		Join("departments d ON d.id = p.department_id").
		Join("faculties f ON f.id = d.faculty_id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get promotion query: %w", err)
	}

	promotion := &models.Promotion{
		Department: &models.Department{Faculty: &models.Faculty{}},
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&promotion.ID, &promotion.DepartmentID, &promotion.Name, &promotion.AcademicYear,
		&promotion.Department.ID, &promotion.Department.FacultyID,
		&promotion.Department.Name, &promotion.Department.Code,
		&promotion.Department.Faculty.ID, &promotion.Department.Faculty.Name,
		&promotion.Department.Faculty.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPromotionNotFound
		}
		logger.Error().Err(err).Int64("promotionID", id).Msg("Error scanning promotion row")
		return nil, fmt.Errorf("error getting promotion by ID: %w", err)
	}
	return promotion, nil
}

// GetAll retrieves all promotions with their departments.
func (r *PromotionRepository) GetAll(ctx context.Context) ([]*models.Promotion, error) {
	sql, args, err := r.sb.Select(
		"p.id", "p.department_id", "p.name", "p.academic_year",
		"d.id", "d.faculty_id", "d.name", "d.code").
		From("promotions p").
		Join("departments d ON d.id = p.department_id").
		OrderBy("p.academic_year DESC", "d.name ASC", "p.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all promotions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all promotions query")
		return nil, fmt.Errorf("error querying promotions: %w", err)
	}
	defer rows.Close()

	promotions := []*models.Promotion{}
	for rows.Next() {
		promotion := &models.Promotion{Department: &models.Department{}}
		err := rows.Scan(
			&promotion.ID, &promotion.DepartmentID, &promotion.Name, &promotion.AcademicYear,
			&promotion.Department.ID, &promotion.Department.FacultyID,
			&promotion.Department.Name, &promotion.Department.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning promotion row: %w", err)
		}
		promotions = append(promotions, promotion)
	}
	return promotions, rows.Err()
}

// Update modifies a promotion.
func (r *PromotionRepository) Update(ctx context.Context, promotion *models.Promotion) error {
	sql, args, err := r.sb.Update("promotions").
		Set("department_id", promotion.DepartmentID).
		Set("name", promotion.Name).
		Set("academic_year", promotion.AcademicYear).
		Where(squirrel.Eq{"id": promotion.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update promotion query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrPromotionExists
		}
		logger.Error().Err(err).Int64("promotionID", promotion.ID).Msg("Error updating promotion")
		return fmt.Errorf("error updating promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPromotionNotFound
	}
	return nil
}

// Delete removes a promotion. Enrolled students keep their profile with
// a detached promotion.
func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("promotions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete promotion query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("promotionID", id).Msg("Error deleting promotion")
		return fmt.Errorf("error deleting promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPromotionNotFound
	}
	return nil
}
