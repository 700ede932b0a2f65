package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// academicYearPattern matches labels like "2024-2025".
var academicYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// PromotionService defines promotion directory operations.
type PromotionService interface {
	Create(ctx context.Context, req *dto.CreatePromotionRequest) (*models.Promotion, error)
	GetByID(ctx context.Context, id int64) (*models.Promotion, error)
	GetAll(ctx context.Context) ([]*models.Promotion, error)
	Update(ctx context.Context, id int64, req *dto.CreatePromotionRequest) (*models.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

type promotionServiceImpl struct {
	promotionRepo  *repositories.PromotionRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewPromotionService creates a new PromotionService.
func NewPromotionService(
	promotionRepo *repositories.PromotionRepository,
	departmentRepo *repositories.DepartmentRepository,
) PromotionService {
	return &promotionServiceImpl{
		promotionRepo:  promotionRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *promotionServiceImpl) validate(req *dto.CreatePromotionRequest) (name, year string, err error) {
	name = strings.TrimSpace(req.Name)
	year = strings.TrimSpace(req.AcademicYear)
	if name == "" {
		return "", "", apperrors.NewValidationError("name", "promotion name cannot be empty")
	}
	if !academicYearPattern.MatchString(year) {
		return "", "", apperrors.NewValidationError("academicYear", "academic year must use the YYYY-YYYY format")
	}
	return name, year, nil
}

func (s *promotionServiceImpl) Create(ctx context.Context, req *dto.CreatePromotionRequest) (*models.Promotion, error) {
	name, year, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	promotion := &models.Promotion{
		DepartmentID: req.DepartmentID,
		Name:         name,
		AcademicYear: year,
	}
	id, err := s.promotionRepo.Create(ctx, promotion)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("promotionID", id).Str("name", name).Str("academicYear", year).Msg("Promotion created")
	return s.promotionRepo.GetByID(ctx, id)
}

func (s *promotionServiceImpl) GetByID(ctx context.Context, id int64) (*models.Promotion, error) {
	return s.promotionRepo.GetByID(ctx, id)
}

func (s *promotionServiceImpl) GetAll(ctx context.Context) ([]*models.Promotion, error) {
	return s.promotionRepo.GetAll(ctx)
}

func (s *promotionServiceImpl) Update(ctx context.Context, id int64, req *dto.CreatePromotionRequest) (*models.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, year, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	if req.DepartmentID != promotion.DepartmentID {
		if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
	}

	promotion.DepartmentID = req.DepartmentID
	promotion.Name = name
	promotion.AcademicYear = year

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}
	return s.promotionRepo.GetByID(ctx, id)
}

func (s *promotionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("promotionID", id).Msg("Promotion deleted")
	return nil
}
