// Package pdfreport renders the internship assignment report as a PDF
// document.
package pdfreport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// AssignmentRow is one line of the assignment report.
type AssignmentRow struct {
	StudentName  string
	Matricule    string
	Promotion    string
	AcademicYear string
	CompanyName  string
	Supervisor   string
}

var columnWidths = []float64{45, 35, 20, 25, 35, 30}

var columnHeaders = []string{
	"Student", "Matricule", "Promotion", "Year", "Company", "Supervisor",
}

// BuildAssignmentReport renders the rows into a PDF and returns the
// document bytes.
func BuildAssignmentReport(rows []AssignmentRow, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Internship assignments", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Internship assignments", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated on %s", generatedAt.Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range columnHeaders {
		pdf.CellFormat(columnWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(190, 8, "No supervisor assignments awaiting start.", "1", 1, "C", false, 0, "")
	}
	for _, row := range rows {
		cells := []string{
			row.StudentName, row.Matricule, row.Promotion,
			row.AcademicYear, row.CompanyName, row.Supervisor,
		}
		for i, cell := range cells {
			pdf.CellFormat(columnWidths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
