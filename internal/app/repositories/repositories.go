package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	UserRepository       *UserRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	PromotionRepository  *PromotionRepository
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	CompanyRepository    *CompanyRepository
	InternshipRepository *InternshipRepository
	TokenRepository      *TokenRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(pool),
		FacultyRepository:    NewFacultyRepository(pool),
		DepartmentRepository: NewDepartmentRepository(pool),
		PromotionRepository:  NewPromotionRepository(pool),
		TeacherRepository:    NewTeacherRepository(pool),
		StudentRepository:    NewStudentRepository(pool),
		CompanyRepository:    NewCompanyRepository(pool),
		InternshipRepository: NewInternshipRepository(pool),
		TokenRepository:      NewTokenRepository(pool),
	}
}
