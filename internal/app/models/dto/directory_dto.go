package dto

// CreateFacultyRequest carries new faculty data.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Code string `json:"code" binding:"required,max=10"`
}

// CreateDepartmentRequest carries new department data.
type CreateDepartmentRequest struct {
	FacultyID int64  `json:"facultyId" binding:"required,min=1"`
	Name      string `json:"name" binding:"required,max=100"`
	Code      string `json:"code" binding:"required,max=10"`
}

// CreatePromotionRequest carries new promotion data. AcademicYear uses
// the "2024-2025" label format.
type CreatePromotionRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
	Name         string `json:"name" binding:"required,max=50"`
	AcademicYear string `json:"academicYear" binding:"required,max=9"`
}

// CreateCompanyRequest carries new partner company data.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName,omitempty" binding:"max=100"`
	ContactEmail string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone,omitempty" binding:"max=50"`
}
