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

// FacultyService defines faculty directory operations.
type FacultyService interface {
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Update(ctx context.Context, id int64, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{facultyRepo: facultyRepo}
}

func (s *facultyServiceImpl) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if name == "" {
		return nil, apperrors.NewValidationError("name", "faculty name cannot be empty")
	}
	if code == "" {
		return nil, apperrors.NewValidationError("code", "faculty code cannot be empty")
	}

	faculty := &models.Faculty{Name: name, Code: code}
	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return nil, err
	}
	faculty.ID = id

	logger.Info().Int64("facultyID", id).Str("code", code).Msg("Faculty created")
	return faculty, nil
}

func (s *facultyServiceImpl) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

func (s *facultyServiceImpl) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}

func (s *facultyServiceImpl) Update(ctx context.Context, id int64, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faculty.Name = strings.TrimSpace(req.Name)
	faculty.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if faculty.Name == "" {
		return nil, apperrors.NewValidationError("name", "faculty name cannot be empty")
	}
	if faculty.Code == "" {
		return nil, apperrors.NewValidationError("code", "faculty code cannot be empty")
	}

	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

func (s *facultyServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("facultyID", id).Msg("Faculty deleted")
	return nil
}
