package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/apperrors"
	portssvc "github.com/SscSPs/cashbook_backend/internal/core/ports/services"
	"github.com/SscSPs/cashbook_backend/internal/dto"
	"github.com/SscSPs/cashbook_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingFields  = "Missing required fields."
	msgInvalidType    = "Invalid type. Allowed values: IN, OUT."
	msgInvalidMobile  = "Invalid mobile number."
	msgInternalError  = "Internal server error."
	msgFormSubmitted  = "Form submitted successfully!"
	msgInvalidRequest = "Invalid request format."
)

// ledgerEntryHandler handles HTTP requests for cash-ledger forms.
type ledgerEntryHandler struct {
	ledgerService    portssvc.LedgerEntrySvcFacade
	reportingService portssvc.ReportingService
	now              func() time.Time
}

func newLedgerEntryHandler(ls portssvc.LedgerEntrySvcFacade, rs portssvc.ReportingService) *ledgerEntryHandler {
	return &ledgerEntryHandler{
		ledgerService:    ls,
		reportingService: rs,
		now:              time.Now,
	}
}

// RegisterLedgerEntryRoutes registers /createForm and /getData on rg.
func RegisterLedgerEntryRoutes(rg gin.IRoutes, ledgerService portssvc.LedgerEntrySvcFacade, reportingService portssvc.ReportingService) {
	RegisterValidators()
	h := newLedgerEntryHandler(ledgerService, reportingService)

	rg.POST("/createForm", h.createForm)
	rg.GET("/getData", h.getData)
}

// createForm godoc
// @Summary Record a cash-ledger entry
// @Description Validates the form, notifies the customer over WhatsApp (best effort) and stores the entry.
// @Tags forms
// @Accept  json
// @Produce  json
// @Param   form body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.CreateLedgerEntryResponse
// @Failure 400 {object} dto.MessageResponse "Missing or invalid fields"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Security BearerAuth
// @Router /createForm [post]
func (h *ledgerEntryHandler) createForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createForm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: bindErrorMessage(err)})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
			return
		}
		logger.Error("Failed to create entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateLedgerEntryResponse{
		Message: msgFormSubmitted,
		Form:    dto.ToLedgerEntryResponse(entry),
	})
}

// getData godoc
// @Summary List entries with aggregates
// @Description Returns every entry (newest first) with all-time and same-day totals.
// @Tags forms
// @Produce  json
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Security BearerAuth
// @Router /getData [get]
func (h *ledgerEntryHandler) getData(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := h.ledgerService.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}

	stats, err := h.reportingService.Stats(ctx, h.now())
	if err != nil {
		logger.Error("Failed to compute entry stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, stats))
}

// bindErrorMessage maps binding failures to the client-facing message. Missing
// fields win over an invalid type.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgInvalidRequest + " " + err.Error()
	}

	msg := ""
	for _, fe := range verrs {
		switch {
		case fe.Tag() == "required":
			return msgMissingFields
		case fe.Field() == "Type" && msg == "":
			msg = msgInvalidType
		case fe.Tag() == "phone" && msg == "":
			msg = msgInvalidMobile
		case msg == "":
			msg = fe.Error()
		}
	}
	return msg
}
