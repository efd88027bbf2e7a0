package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/domain"
	"kitchenadmin/internal/pkg/response"
	"kitchenadmin/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.PATCH("/bookings/:id/payment-status", h.ChangePaymentStatus)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Query:         c.Query("q"),
		PaymentStatus: domain.PaymentStatus(c.Query("payment_status")),
	}

	bookings, err := h.service.List(c.Request.Context(), apiToken(c), filter)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	details, err := h.service.Get(c.Request.Context(), apiToken(c), id)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Message(err))
		return
	}

	b, err := h.service.Create(c.Request.Context(), apiToken(c), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking draft has missing or invalid fields")
			return
		}
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

type changePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status" binding:"required"`
}

func (h *Handler) ChangePaymentStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req changePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validator.Message(err))
		return
	}

	b, err := h.service.ChangePaymentStatus(c.Request.Context(), apiToken(c), id, req.PaymentStatus)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown payment status")
			return
		}
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), apiToken(c), id); err != nil {
		response.Upstream(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func apiToken(c *gin.Context) string {
	return c.GetString("api_token")
}
