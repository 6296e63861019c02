package voucher

import (
	"errors"
	"net/http"
	"strconv"

	"cinebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vouchers/mine", h.ListMine)
	rg.POST("/vouchers/redeem", h.Redeem)
	rg.GET("/vouchers/validate/:code", h.Validate)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/vouchers", h.Create)
	rg.GET("/vouchers", h.List)
	rg.GET("/vouchers/:id", h.Get)
	rg.PUT("/vouchers/:id", h.Update)
	rg.DELETE("/vouchers/:id", h.Delete)
}

func voucherID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid voucher id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"voucher": v})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := voucherID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voucher": v})
}

func (h *Handler) List(c *gin.Context) {
	vouchers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vouchers": vouchers})
}

func (h *Handler) ListMine(c *gin.Context) {
	vouchers, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"vouchers": vouchers})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := voucherID(c)
	if !ok {
		return
	}
	var req UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voucher": v})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := voucherID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Redeem(c *gin.Context) {
	var req RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.Redeem(c.Request.Context(), c.GetInt64("user_id"), req.Code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voucher": v})
}

func (h *Handler) Validate(c *gin.Context) {
	v, err := h.service.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"voucher": v})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrExpired), errors.Is(err, ErrAlreadyHeld), errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VOUCHER_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process voucher request")
	}
}
