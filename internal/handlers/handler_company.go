package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledger-ar/company_transfers_app/internal/core/ports/services"
	"github.com/ledger-ar/company_transfers_app/internal/dto"
	"github.com/ledger-ar/company_transfers_app/internal/middleware"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// RegisterCompanyRoutes registers routes related to companies.
func RegisterCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/adhering/last-month", h.listCompaniesAdheringLastMonth)
		companies.GET("/:company_id", h.getCompanyByID)
		companies.DELETE("/:company_id", h.deleteCompany)
	}
}

// createCompany godoc
// @Summary Register a new company
// @Description Registers an adhering company. The CUIT is normalized to the dashed canonical form and must be unique among non-deleted companies.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.Envelope{result=dto.GenericResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failure with per-field messages"
// @Failure 409 {object} dto.ErrorResponse "Duplicate CUIT"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		logger.Warn("Company payload failed validation", slog.Int("field_errors", len(errs)))
		respondFieldErrors(c, errs)
		return
	}

	resp, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create company", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Wrap(resp))
}

// listCompanies godoc
// @Summary List companies
// @Description Retrieves a paginated list of non-deleted companies, newest first. An empty result set is reported as 404.
// @Tags companies
// @Produce  json
// @Param   page query int false "Zero-based page" default(0)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{result=dto.PaginatedResponse[dto.CompanyResponse]}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PaginatedQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pagination parameters: " + err.Error()})
		return
	}

	resp, err := h.companyService.ListCompanies(c.Request.Context(), params)
	if err != nil {
		logger.Warn("Failed to list companies", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// getCompanyByID godoc
// @Summary Get a company
// @Description Retrieves a company by numeric id or UUID.
// @Tags companies
// @Produce  json
// @Param   company_id path string true "Numeric id or UUID"
// @Success 200 {object} dto.Envelope{result=dto.CompanyResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{company_id} [get]
func (h *companyHandler) getCompanyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("company_id")

	resp, err := h.companyService.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		logger.Warn("Failed to get company", slog.String("id", id), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// listCompaniesAdheringLastMonth godoc
// @Summary List companies that adhered last month
// @Description Retrieves active companies whose adhesion date falls within the previous calendar month.
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.Envelope{result=[]dto.CompanyResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/adhering/last-month [get]
func (h *companyHandler) listCompaniesAdheringLastMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.companyService.FindCompaniesAdheringLastMonth(c.Request.Context())
	if err != nil {
		logger.Warn("Failed to list companies adhering last month", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Soft deletes a company by numeric id or UUID. The row is kept with a deletion marker.
// @Tags companies
// @Produce  json
// @Param   company_id path string true "Numeric id or UUID"
// @Success 200 {object} dto.Envelope{result=dto.GenericResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{company_id} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("company_id")

	if err := h.companyService.SoftDeleteCompany(c.Request.Context(), id); err != nil {
		logger.Warn("Failed to delete company", slog.String("id", id), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(dto.GenericResponse{Message: "Company deleted successfully"}))
}
