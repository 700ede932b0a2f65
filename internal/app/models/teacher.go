package models

// Teacher is a teaching profile bound one-to-one to an account; the
// account ID is the primary key. Teachers may supervise internships.
type Teacher struct {
	UserID       int64       `json:"userId" db:"user_id"`
	Matricule    string      `json:"matricule" db:"matricule"`
	FullName     string      `json:"fullName" db:"full_name"`
	DepartmentID *int64      `json:"departmentId,omitempty" db:"department_id"`
	User         *User       `json:"user,omitempty"`
	Department   *Department `json:"department,omitempty"`
}
