package services

import (
	"context"
	"fmt"
	"time"

	"github.com/unistages/backend/internal/app/repositories"
	"github.com/unistages/backend/internal/pkg/logger"
	"github.com/unistages/backend/internal/pkg/pdfreport"
)

// ReportService produces downloadable reports.
type ReportService interface {
	AssignmentReport(ctx context.Context) (content []byte, filename string, err error)
}

type reportServiceImpl struct {
	internshipRepo *repositories.InternshipRepository
	now            func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(internshipRepo *repositories.InternshipRepository) ReportService {
	return &reportServiceImpl{
		internshipRepo: internshipRepo,
		now:            time.Now,
	}
}

// AssignmentReport builds a PDF of internships with an assigned
// supervisor awaiting start, ordered by academic year, promotion and
// student name. The filename carries the generation date.
func (s *reportServiceImpl) AssignmentReport(ctx context.Context) ([]byte, string, error) {
	internships, err := s.internshipRepo.GetAssignedForReport(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := make([]pdfreport.AssignmentRow, 0, len(internships))
	for _, internship := range internships {
		row := pdfreport.AssignmentRow{
			StudentName: internship.Student.FullName,
			Matricule:   internship.Student.Matricule,
		}
		if internship.Student.Promotion != nil {
			row.Promotion = internship.Student.Promotion.Name
			row.AcademicYear = internship.Student.Promotion.AcademicYear
		}
		if internship.SelectedCompany != nil {
			row.CompanyName = internship.SelectedCompany.Name
		}
		if internship.Supervisor != nil {
			row.Supervisor = internship.Supervisor.FullName
		}
		rows = append(rows, row)
	}

	generatedAt := s.now()
	content, err := pdfreport.BuildAssignmentReport(rows, generatedAt)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("rapport_affectations_stages_%s.pdf", generatedAt.Format("20060102"))
	logger.Info().Int("rows", len(rows)).Str("filename", filename).Msg("Assignment report generated")
	return content, filename, nil
}
