package reports

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kitchenadmin/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/reports/revenue", h.Revenue)
	rg.GET("/reports/bank-fees", h.BankFees)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context(), c.GetString("api_token"), time.Now())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) Revenue(c *gin.Context) {
	month, ok := intQuery(c, "month")
	if !ok {
		return
	}
	year, ok := intQuery(c, "year")
	if !ok {
		return
	}

	report, err := h.service.Revenue(c.Request.Context(), c.GetString("api_token"), month, year)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Month must be 1-12")
			return
		}
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) BankFees(c *gin.Context) {
	report, err := h.service.BankFees(c.Request.Context(), c.GetString("api_token"))
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
