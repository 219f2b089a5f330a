package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledger-ar/company_transfers_app/internal/core/ports/services"
	"github.com/ledger-ar/company_transfers_app/internal/dto"
	"github.com/ledger-ar/company_transfers_app/internal/middleware"
)

// transferHandler handles HTTP requests related to bank transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// RegisterTransferRoutes registers routes related to transfers.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/companies/last-month", h.listCompaniesWithTransfersLastMonth)
		transfers.GET("/company/:company_id", h.listTransfersByCompany)
		transfers.GET("/:transfer_id", h.getTransferByID)
		transfers.PATCH("/:transfer_id/status", h.updateTransferStatus)
	}
}

// createTransfer godoc
// @Summary Register a new transfer
// @Description Registers a transfer for an adhered company. Accounts are normalized to digits, the amount is rounded to 2 decimals and the status defaults to PENDING.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.Envelope{result=dto.GenericResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failure with per-field messages"
// @Failure 404 {object} dto.ErrorResponse "Owning company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		logger.Warn("Transfer payload failed validation", slog.Int("field_errors", len(errs)))
		respondFieldErrors(c, errs)
		return
	}

	resp, err := h.transferService.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create transfer", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Wrap(resp))
}

// listTransfers godoc
// @Summary List transfers
// @Description Retrieves a paginated list of transfers, newest first, with masked account numbers.
// @Tags transfers
// @Produce  json
// @Param   page query int false "Zero-based page" default(0)
// @Param   limit query int false "Page size" default(10)
// @Success 200 {object} dto.Envelope{result=dto.PaginatedResponse[dto.TransferResponse]}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PaginatedQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pagination parameters: " + err.Error()})
		return
	}

	resp, err := h.transferService.ListTransfers(c.Request.Context(), params)
	if err != nil {
		logger.Warn("Failed to list transfers", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// getTransferByID godoc
// @Summary Get a transfer
// @Description Retrieves a transfer by numeric id or UUID, joined with its owning company.
// @Tags transfers
// @Produce  json
// @Param   transfer_id path string true "Numeric id or UUID"
// @Success 200 {object} dto.Envelope{result=dto.TransferResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transfers/{transfer_id} [get]
func (h *transferHandler) getTransferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("transfer_id")

	resp, err := h.transferService.GetTransferByID(c.Request.Context(), id)
	if err != nil {
		logger.Warn("Failed to get transfer", slog.String("id", id), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// listTransfersByCompany godoc
// @Summary List transfers of a company
// @Description Retrieves every transfer owned by the company, ordered by transfer date descending.
// @Tags transfers
// @Produce  json
// @Param   company_id path string true "Company numeric id or UUID"
// @Success 200 {object} dto.Envelope{result=[]dto.TransferResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transfers/company/{company_id} [get]
func (h *transferHandler) listTransfersByCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	resp, err := h.transferService.ListTransfersByCompany(c.Request.Context(), companyID)
	if err != nil {
		logger.Warn("Failed to list transfers by company", slog.String("company_id", companyID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// listCompaniesWithTransfersLastMonth godoc
// @Summary List companies with transfers last month
// @Description Retrieves the companies that made at least one transfer dated within the previous calendar month.
// @Tags transfers
// @Produce  json
// @Success 200 {object} dto.Envelope{result=[]dto.CompanySummary}
// @Failure 404 {object} dto.ErrorResponse
// @Router /transfers/companies/last-month [get]
func (h *transferHandler) listCompaniesWithTransfersLastMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.transferService.FindCompaniesWithTransfersLastMonth(c.Request.Context())
	if err != nil {
		logger.Warn("Failed to list companies with transfers last month", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}

// updateTransferStatus godoc
// @Summary Update a transfer's status
// @Description Transitions a transfer to a new status. Entering COMPLETED or FAILED stamps the processed date once.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer_id path string true "Numeric id or UUID"
// @Param   status body dto.UpdateTransferStatusRequest true "New status"
// @Success 200 {object} dto.Envelope{result=dto.TransferResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transfers/{transfer_id}/status [patch]
func (h *transferHandler) updateTransferStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("transfer_id")

	var req dto.UpdateTransferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransferStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.transferService.UpdateTransferStatus(c.Request.Context(), id, req)
	if err != nil {
		logger.Warn("Failed to update transfer status", slog.String("id", id), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Wrap(resp))
}
