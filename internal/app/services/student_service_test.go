package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unistages/backend/internal/app/models"
)

func promotionFixture(year, facultyCode, name string) *models.Promotion {
	return &models.Promotion{
		Name:         name,
		AcademicYear: year,
		Department: &models.Department{
			Faculty: &models.Faculty{Code: facultyCode},
		},
	}
}

func TestGenerateMatricule(t *testing.T) {
	tests := []struct {
		name         string
		promotion    *models.Promotion
		enrollmentID int
		want         string
	}{
		{
			name:         "standard promotion",
			promotion:    promotionFixture("2024-2025", "ST", "L3"),
			enrollmentID: 7,
			want:         "2024-7-ST-L3",
		},
		{
			name:         "large enrollment number",
			promotion:    promotionFixture("2025-2026", "EG", "M1"),
			enrollmentID: 143,
			want:         "2025-143-EG-M1",
		},
		{
			name:         "promotion without department context",
			promotion:    &models.Promotion{Name: "L1", AcademicYear: "2024-2025"},
			enrollmentID: 3,
			want:         "2024-3--L1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateMatricule(tt.promotion, tt.enrollmentID))
		})
	}
}

func TestGenerateMatriculeUsesFirstYearOfAcademicYear(t *testing.T) {
	promotion := promotionFixture("2023-2024", "ST", "L2")
	assert.Equal(t, "2023-12-ST-L2", GenerateMatricule(promotion, 12))
}
