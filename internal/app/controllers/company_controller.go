package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/models/dto"
	"github.com/unistages/backend/internal/app/services"
	"github.com/unistages/backend/internal/middleware"
)

// CompanyController handles partner company endpoints.
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController.
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// Create handles POST /faculty/companies.
func (ctrl *CompanyController) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	company, err := ctrl.companyService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAPIResponse(company))
}

// GetAll handles GET /faculty/companies and GET /student/companies.
func (ctrl *CompanyController) GetAll(c *gin.Context) {
	companies, err := ctrl.companyService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

// GetByID handles GET /faculty/companies/:id.
func (ctrl *CompanyController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	company, err := ctrl.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(company))
}

// Update handles PUT /faculty/companies/:id.
func (ctrl *CompanyController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	company, err := ctrl.companyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAPIResponse(company))
}

// Delete handles DELETE /faculty/companies/:id.
func (ctrl *CompanyController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.companyService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("Company deleted"))
}
