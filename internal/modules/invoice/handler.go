package invoice

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/pkg/response"
	"kitchenadmin/internal/pkg/validator"
	"kitchenadmin/internal/render"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/invoices/pdf", h.InvoicePDF)
	rg.GET("/bookings/:id/summary.pdf", h.BookingSummaryPDF)
}

func (h *Handler) InvoicePDF(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Message(err))
		return
	}

	doc, err := h.service.InvoicePDF(req)
	if err != nil {
		h.exportError(c, err)
		return
	}
	streamPDF(c, doc)
}

func (h *Handler) BookingSummaryPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	doc, err := h.service.BookingSummaryPDF(c.Request.Context(), c.GetString("api_token"), id)
	if err != nil {
		h.exportError(c, err)
		return
	}
	streamPDF(c, doc)
}

// exportError distinguishes a broken asset (the operator must be told the
// export itself failed) from an upstream fetch problem.
func (h *Handler) exportError(c *gin.Context, err error) {
	if errors.Is(err, render.ErrLogoUnavailable) {
		response.Error(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}
	response.Upstream(c, err)
}

func streamPDF(c *gin.Context, doc *Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
