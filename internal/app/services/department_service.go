package services

import (
	"context"
	"strings"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/logger"
)

// DepartmentService defines department directory operations.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, id int64, req *dto.CreateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	facultyRepo    *repositories.FacultyRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(
	departmentRepo *repositories.DepartmentRepository,
	facultyRepo *repositories.FacultyRepository,
) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
	}
}

func (s *departmentServiceImpl) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if _, err := s.facultyRepo.GetByID(ctx, req.FacultyID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if name == "" {
		return nil, apperrors.NewValidationError("name", "department name cannot be empty")
	}
	if code == "" {
		return nil, apperrors.NewValidationError("code", "department code cannot be empty")
	}

	department := &models.Department{FacultyID: req.FacultyID, Name: name, Code: code}
	id, err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("departmentID", id).Str("code", code).Msg("Department created")
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *departmentServiceImpl) Update(ctx context.Context, id int64, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FacultyID != department.FacultyID {
		if _, err := s.facultyRepo.GetByID(ctx, req.FacultyID); err != nil {
			return nil, err
		}
	}

	department.FacultyID = req.FacultyID
	department.Name = strings.TrimSpace(req.Name)
	department.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if department.Name == "" {
		return nil, apperrors.NewValidationError("name", "department name cannot be empty")
	}
	if department.Code == "" {
		return nil, apperrors.NewValidationError("code", "department code cannot be empty")
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
