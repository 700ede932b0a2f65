package dto

// CreateTeacherRequest provisions a teacher profile together with its
// account. The matricule becomes the login handle.
type CreateTeacherRequest struct {
	Matricule    string `json:"matricule" binding:"required,max=50"`
	FullName     string `json:"fullName" binding:"required,max=200"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Password     string `json:"password" binding:"required,min=8"`
}

// UpdateTeacherRequest modifies a teacher profile. The matricule is the
// identity key and cannot change; an empty password leaves the
// credential untouched.
type UpdateTeacherRequest struct {
	FullName     string `json:"fullName" binding:"required,max=200"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	Password     string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// CreateStudentRequest provisions a student profile together with its
// account. The matricule and login handle are generated from the
// promotion context and enrollment ID.
type CreateStudentRequest struct {
	FullName     string `json:"fullName" binding:"required,max=200"`
	PromotionID  int64  `json:"promotionId" binding:"required,min=1"`
	EnrollmentID int    `json:"enrollmentId" binding:"required,min=1"`
	Password     string `json:"password" binding:"required,min=8"`
}

// UpdateStudentRequest modifies a student profile. The enrollment ID
// and matricule are fixed after creation.
type UpdateStudentRequest struct {
	FullName    string `json:"fullName" binding:"required,max=200"`
	PromotionID *int64 `json:"promotionId,omitempty"`
	Password    string `json:"password,omitempty" binding:"omitempty,min=8"`
}
