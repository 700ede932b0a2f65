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

// CompanyService defines partner company directory operations.
type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, id int64, req *dto.CreateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyServiceImpl struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo *repositories.CompanyRepository) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

func (s *companyServiceImpl) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "company name cannot be empty")
	}

	company := &models.Company{
		Name:         name,
		Address:      strings.TrimSpace(req.Address),
		ContactName:  strings.TrimSpace(req.ContactName),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
	}
	id, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = id

	logger.Info().Int64("companyID", id).Str("name", name).Msg("Company created")
	return company, nil
}

func (s *companyServiceImpl) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyServiceImpl) GetAll(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

func (s *companyServiceImpl) Update(ctx context.Context, id int64, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = strings.TrimSpace(req.Name)
	if company.Name == "" {
		return nil, apperrors.NewValidationError("name", "company name cannot be empty")
	}
	company.Address = strings.TrimSpace(req.Address)
	company.ContactName = strings.TrimSpace(req.ContactName)
	company.ContactEmail = strings.TrimSpace(req.ContactEmail)
	company.ContactPhone = strings.TrimSpace(req.ContactPhone)

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("companyID", id).Msg("Company deleted")
	return nil
}
