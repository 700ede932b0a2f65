package models

// Promotion is a cohort within a department for one academic year,
// e.g. name "L3" for academic year "2024-2025". The (department, name,
// academic year) triple is unique.
type Promotion struct {
	ID           int64       `json:"id"`
	DepartmentID int64       `json:"departmentId"`
	Name         string      `json:"name"`
	AcademicYear string      `json:"academicYear"`
	Department   *Department `json:"department,omitempty"`
}
