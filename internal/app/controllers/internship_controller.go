package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/services"
	"github.com/unistages/backend/internal/middleware"
	"github.com/unistages/backend/internal/pkg/apperrors"
)

// InternshipController handles the placement workflow endpoints across
// the faculty, teacher and student route groups.
type InternshipController struct {
	internshipService services.InternshipService
	studentService    services.StudentService
}

// NewInternshipController creates a new InternshipController.
func NewInternshipController(
	internshipService services.InternshipService,
	studentService services.StudentService,
) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		studentService:    studentService,
	}
}

// GetAll handles GET /faculty/internships.
func (ctrl *InternshipController) GetAll(c *gin.Context) {
	internships, err := ctrl.internshipService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// Validate handles PUT /faculty/internships/:id/validation.
func (ctrl *InternshipController) Validate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	internship, err := ctrl.internshipService.ValidateAndAssign(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// OverrideStatus handles PUT /faculty/internships/:id/status.
func (ctrl *InternshipController) OverrideStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.StatusOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	internship, err := ctrl.internshipService.OverrideStatus(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// Dashboard handles GET /faculty/dashboard.
func (ctrl *InternshipController) Dashboard(c *gin.Context) {
	stats, err := ctrl.internshipService.Dashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// GetSupervised handles GET /teacher/internships.
func (ctrl *InternshipController) GetSupervised(c *gin.Context) {
	supervisorID := middleware.GetUserID(c)
	internships, err := ctrl.internshipService.GetBySupervisor(c.Request.Context(), supervisorID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// Grade handles PUT /teacher/internships/:id/grade.
func (ctrl *InternshipController) Grade(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	supervisorID := middleware.GetUserID(c)
	internship, err := ctrl.internshipService.Grade(c.Request.Context(), supervisorID, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// GetOwn handles GET /student/me. It returns the student profile with
// the internship record when one exists.
func (ctrl *InternshipController) GetOwn(c *gin.Context) {
	studentID := middleware.GetUserID(c)

	student, err := ctrl.studentService.GetByUserID(c.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	internship, err := ctrl.internshipService.GetByStudent(c.Request.Context(), studentID)
	if err != nil && !errors.Is(err, apperrors.ErrInternshipNotFound) {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"student":    student,
		"internship": internship,
	}))
}

// SubmitProposal handles PUT /student/proposal.
func (ctrl *InternshipController) SubmitProposal(c *gin.Context) {
	var req dto.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	studentID := middleware.GetUserID(c)
	internship, err := ctrl.internshipService.SubmitProposal(c.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}
