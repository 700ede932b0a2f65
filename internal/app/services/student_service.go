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

// StudentService defines student provisioning operations.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, userID int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, userID int64) error
}

type studentServiceImpl struct {
	studentRepo   *repositories.StudentRepository
	userRepo      *repositories.UserRepository
	promotionRepo *repositories.PromotionRepository
	pool          *pgxpool.Pool
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	promotionRepo *repositories.PromotionRepository,
	pool *pgxpool.Pool,
) StudentService {
	return &studentServiceImpl{
		studentRepo:   studentRepo,
		userRepo:      userRepo,
		promotionRepo: promotionRepo,
		pool:          pool,
	}
}

// GenerateMatricule builds the student matricule from the promotion
// context: the academic year's first year, the enrollment ID, the
// faculty code and the promotion name, e.g. "2024-12-ST-L3".
func GenerateMatricule(promotion *models.Promotion, enrollmentID int) string {
	year := promotion.AcademicYear
	if idx := strings.Index(year, "-"); idx > 0 {
		year = year[:idx]
	}
	facultyCode := ""
	if promotion.Department != nil && promotion.Department.Faculty != nil {
		facultyCode = promotion.Department.Faculty.Code
	}
	return fmt.Sprintf("%s-%d-%s-%s", year, enrollmentID, facultyCode, promotion.Name)
}

// Create provisions the account and student profile atomically. The
// generated matricule doubles as the login handle.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name cannot be empty")
	}

	promotion, err := s.promotionRepo.GetByID(ctx, req.PromotionID)
	if err != nil {
		return nil, err
	}

	taken, err := s.studentRepo.EnrollmentIDTaken(ctx, promotion.AcademicYear, req.EnrollmentID, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEnrollmentIDExists
	}

	matricule := GenerateMatricule(promotion, req.EnrollmentID)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var userID int64
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		userID, err = s.userRepo.Create(ctx, tx, &models.User{
			Username: matricule,
			Password: hash,
			RoleType: models.RoleStudent,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		return s.studentRepo.Create(ctx, tx, &models.Student{
			UserID:       userID,
			Matricule:    matricule,
			FullName:     fullName,
			PromotionID:  &req.PromotionID,
			EnrollmentID: req.EnrollmentID,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("matricule", matricule).Msg("Student created")
	return s.studentRepo.GetByUserID(ctx, userID)
}

func (s *studentServiceImpl) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Update modifies a student profile. The enrollment ID and matricule
// stay fixed; a non-empty password resets the account credential.
func (s *studentServiceImpl) Update(ctx context.Context, userID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationError("fullName", "full name cannot be empty")
	}
	if req.PromotionID != nil {
		promotion, err := s.promotionRepo.GetByID(ctx, *req.PromotionID)
		if err != nil {
			return nil, err
		}
		if student.PromotionID == nil || *student.PromotionID != promotion.ID {
			taken, err := s.studentRepo.EnrollmentIDTaken(ctx, promotion.AcademicYear, student.EnrollmentID, userID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperrors.ErrEnrollmentIDExists
			}
		}
	}

	student.FullName = fullName
	student.PromotionID = req.PromotionID
	if err := s.studentRepo.Update(ctx, student); err != nil {
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

	return s.studentRepo.GetByUserID(ctx, userID)
}

// Delete removes the student's account; the profile row and internship
// record are removed by cascade.
func (s *studentServiceImpl) Delete(ctx context.Context, userID int64) error {
	if _, err := s.studentRepo.GetByUserID(ctx, userID); err != nil {
		return err
	}

	err := db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.userRepo.Delete(ctx, tx, userID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Msg("Student deleted")
	return nil
}
