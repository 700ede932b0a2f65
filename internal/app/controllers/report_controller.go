package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unistages/backend/internal/app/services"
	"github.com/unistages/backend/internal/middleware"
)

// ReportController handles report downloads.
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController.
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// AssignmentReport handles GET /faculty/reports/assignments. It streams
// the PDF as an attachment.
func (ctrl *ReportController) AssignmentReport(c *gin.Context) {
	content, filename, err := ctrl.reportService.AssignmentReport(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}
