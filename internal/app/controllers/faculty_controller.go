package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/services"
	"github.com/unistages/backend/internal/middleware"
)

// FacultyController handles faculty directory endpoints.
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController.
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// Create handles POST /faculty/faculties.
func (ctrl *FacultyController) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// GetAll handles GET /faculty/faculties.
func (ctrl *FacultyController) GetAll(c *gin.Context) {
	faculties, err := ctrl.facultyService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(faculties))
}

// GetByID handles GET /faculty/faculties/:id.
func (ctrl *FacultyController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// Update handles PUT /faculty/faculties/:id.
func (ctrl *FacultyController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// Delete handles DELETE /faculty/faculties/:id.
func (ctrl *FacultyController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.facultyService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Faculty deleted"))
}
