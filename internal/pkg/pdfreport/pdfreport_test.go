package pdfreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAssignmentReport(t *testing.T) {
	rows := []AssignmentRow{
		{
			StudentName:  "Alice Durand",
			Matricule:    "2024-1-ST-L3",
			Promotion:    "L3",
			AcademicYear: "2024-2025",
			CompanyName:  "Acme Corp",
			Supervisor:   "Dr. Martin",
		},
		{
			StudentName:  "Bob Kalala",
			Matricule:    "2024-2-ST-L3",
			Promotion:    "L3",
			AcademicYear: "2024-2025",
			CompanyName:  "Globex",
			Supervisor:   "Dr. Ilunga",
		},
	}

	content, err := BuildAssignmentReport(rows, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestBuildAssignmentReportEmpty(t *testing.T) {
	content, err := BuildAssignmentReport(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}
