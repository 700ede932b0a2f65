package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/controllers"
	"github.com/unistages/backend/internal/app/models"
	"github.com/unistages/backend/internal/middleware"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Auth       *controllers.AuthController
	Faculty    *controllers.FacultyController
	Department *controllers.DepartmentController
	Promotion  *controllers.PromotionController
	Company    *controllers.CompanyController
	Teacher    *controllers.TeacherController
	Student    *controllers.StudentController
	Internship *controllers.InternshipController
	Report     *controllers.ReportController
}

// Setup registers all routes on the engine.
func Setup(router *gin.Engine, ctrl *Controllers, authMw *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/refresh", ctrl.Auth.RefreshToken)

		authed := authGroup.Group("", authMw.JWTAuth())
		authed.POST("/logout", ctrl.Auth.Logout)
		authed.POST("/change-password", ctrl.Auth.ChangePassword)
		authed.GET("/profile", ctrl.Auth.GetProfile)
	}

	facultyGroup := v1.Group("/faculty", authMw.JWTAuth(), authMw.RoleRequired(string(models.RoleFaculty)))
	{
		facultyGroup.GET("/dashboard", ctrl.Internship.Dashboard)

		facultyGroup.POST("/faculties", ctrl.Faculty.Create)
		facultyGroup.GET("/faculties", ctrl.Faculty.GetAll)
		facultyGroup.GET("/faculties/:id", ctrl.Faculty.GetByID)
		facultyGroup.PUT("/faculties/:id", ctrl.Faculty.Update)
		facultyGroup.DELETE("/faculties/:id", ctrl.Faculty.Delete)

		facultyGroup.POST("/departments", ctrl.Department.Create)
		facultyGroup.GET("/departments", ctrl.Department.GetAll)
		facultyGroup.GET("/departments/:id", ctrl.Department.GetByID)
		facultyGroup.PUT("/departments/:id", ctrl.Department.Update)
		facultyGroup.DELETE("/departments/:id", ctrl.Department.Delete)

		facultyGroup.POST("/promotions", ctrl.Promotion.Create)
		facultyGroup.GET("/promotions", ctrl.Promotion.GetAll)
		facultyGroup.GET("/promotions/:id", ctrl.Promotion.GetByID)
		facultyGroup.PUT("/promotions/:id", ctrl.Promotion.Update)
		facultyGroup.DELETE("/promotions/:id", ctrl.Promotion.Delete)

		facultyGroup.POST("/companies", ctrl.Company.Create)
		facultyGroup.GET("/companies", ctrl.Company.GetAll)
		facultyGroup.GET("/companies/:id", ctrl.Company.GetByID)
		facultyGroup.PUT("/companies/:id", ctrl.Company.Update)
		facultyGroup.DELETE("/companies/:id", ctrl.Company.Delete)

		facultyGroup.POST("/teachers", ctrl.Teacher.Create)
		facultyGroup.GET("/teachers", ctrl.Teacher.GetAll)
		facultyGroup.GET("/teachers/:id", ctrl.Teacher.GetByID)
		facultyGroup.PUT("/teachers/:id", ctrl.Teacher.Update)
		facultyGroup.DELETE("/teachers/:id", ctrl.Teacher.Delete)

		facultyGroup.POST("/students", ctrl.Student.Create)
		facultyGroup.GET("/students", ctrl.Student.GetAll)
		facultyGroup.GET("/students/:id", ctrl.Student.GetByID)
		facultyGroup.PUT("/students/:id", ctrl.Student.Update)
		facultyGroup.DELETE("/students/:id", ctrl.Student.Delete)

		facultyGroup.GET("/internships", ctrl.Internship.GetAll)
		facultyGroup.PUT("/internships/:id/validation", ctrl.Internship.Validate)
		facultyGroup.PUT("/internships/:id/status", ctrl.Internship.OverrideStatus)

		facultyGroup.GET("/reports/assignments", ctrl.Report.AssignmentReport)
	}

	teacherGroup := v1.Group("/teacher", authMw.JWTAuth(), authMw.RoleRequired(string(models.RoleTeacher)))
	{
		teacherGroup.GET("/internships", ctrl.Internship.GetSupervised)
		teacherGroup.PUT("/internships/:id/grade", ctrl.Internship.Grade)
	}

	studentGroup := v1.Group("/student", authMw.JWTAuth(), authMw.RoleRequired(string(models.RoleStudent)))
	{
		studentGroup.GET("/me", ctrl.Internship.GetOwn)
		studentGroup.GET("/companies", ctrl.Company.GetAll)
		studentGroup.PUT("/proposal", ctrl.Internship.SubmitProposal)
	}
}
