package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/db"
	"github.com/unistages/backend/internal/pkg/apperrors"
	"github.com/unistages/backend/internal/pkg/auth"
	"github.com/unistages/backend/internal/pkg/logger"
)

// TeacherService defines teacher provisioning operations.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, userID int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, userID int64) error
}

type teacherServiceImpl struct {
	teacherRepo    *repositories.TeacherRepository
	userRepo       *repositories.UserRepository
	departmentRepo *repositories.DepartmentRepository
	pool           *pgxpool.Pool
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(
	teacherRepo *repositories.TeacherRepository,
	userRepo *repositories.UserRepository,
	departmentRepo *repositories.DepartmentRepository,
	pool *pgxpool.Pool,
) TeacherService {
	return &teacherServiceImpl{
		teacherRepo:    teacherRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		pool:           pool,
	}
}

// Create provisions the account and teacher profile atomically. The
// matricule doubles as the login handle.
func (s *teacherServiceImpl) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	matricule := strings.TrimSpace(req.Matricule)
	fullName := strings.TrimSpace(req.FullName)
	if matricule == "" {
		return nil, apperrors.NewValidationError("matricule", "matricule cannot be empty")
	}
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name cannot be empty")
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var userID int64
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		userID, err = s.userRepo.Create(ctx, tx, &models.User{
			Username: matricule,
			Password: hash,
			RoleType: models.RoleTeacher,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		return s.teacherRepo.Create(ctx, tx, &models.Teacher{
			UserID:       userID,
			Matricule:    matricule,
			FullName:     fullName,
			DepartmentID: req.DepartmentID,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("matricule", matricule).Msg("Teacher created")
	return s.teacherRepo.GetByUserID(ctx, userID)
}

func (s *teacherServiceImpl) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByUserID(ctx, userID)
}

func (s *teacherServiceImpl) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// Update modifies a teacher profile. A non-empty password resets the
// account credential.
func (s *teacherServiceImpl) Update(ctx context.Context, userID int64, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name cannot be empty")
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	teacher.FullName = fullName
	teacher.DepartmentID = req.DepartmentID
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, s.pool, userID, hash); err != nil {
			return nil, err
		}
	}

	return s.teacherRepo.GetByUserID(ctx, userID)
}

// Delete removes the teacher's account; the profile row and supervisor
// references are handled by the schema.
func (s *teacherServiceImpl) Delete(ctx context.Context, userID int64) error {
	if _, err := s.teacherRepo.GetByUserID(ctx, userID); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.userRepo.Delete(ctx, tx, userID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Msg("Teacher deleted")
	return nil
}
