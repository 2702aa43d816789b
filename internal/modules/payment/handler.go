package payment

import (
	"errors"
	"net/http"
	"strconv"

	"moorehotels/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the gateway-facing callback endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/simulator", h.Simulator)
	rg.POST("/payments/callback", h.Callback)
}

// RegisterStaffRoutes mounts verification and refund endpoints for staff.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/refunds", h.ListRefunds)
	rg.POST("/bookings/:id/verify-payment", h.Verify)
	rg.POST("/bookings/:id/refund", h.Refund)
}

// Simulator stands in for the hosted payment page. Hitting the link marks
// the booking paid with a synthetic reference.
func (h *Handler) Simulator(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "code is required")
		return
	}
	reference := c.Query("reference")
	if reference == "" {
		reference = "SIM-" + code
	}

	b, err := h.service.VerifyAndConfirm(c.Request.Context(), code, reference)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// Callback is the server-to-server confirmation from the processor.
func (h *Handler) Callback(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.VerifyAndConfirm(c.Request.Context(), req.BookingCode, req.Reference)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

// Verify lets staff confirm a direct bank transfer they have sighted.
func (h *Handler) Verify(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.ConfirmPaymentByID(c.Request.Context(), id, req.Reference, actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Refund(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}
	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CompleteRefund(c.Request.Context(), id, req.Reference, actorFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListRefunds(c *gin.Context) {
	bookings, err := h.service.ListPendingRefunds(c.Request.Context())
	if err != nil {
		response.Internal(c)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrBookingCancelled):
		response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", err.Error())
	case errors.Is(err, ErrRefundNotPending):
		response.Error(c, http.StatusConflict, "REFUND_NOT_PENDING", err.Error())
	case errors.Is(err, ErrVerification):
		response.Error(c, http.StatusUnprocessableEntity, "VERIFICATION_FAILED", err.Error())
	default:
		response.Internal(c)
	}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetInt64("user_id"),
		Name: c.GetString("user_name"),
	}
}
