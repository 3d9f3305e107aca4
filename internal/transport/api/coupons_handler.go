package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
)

type CouponsHandler struct {
	svs CouponServicer
}

func NewCouponsHandler(svs CouponServicer) *CouponsHandler {
	return &CouponsHandler{
		svs: svs,
	}
}

type ValidateCouponParams struct {
	Code   string          `json:"code" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,decimal_positive"`
	UserID int64           `json:"user_id" binding:"required"`
}

type ValidateCouponResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// Validate POST CouponValidateRoute.
//
// Отказ валидации - это не сбой сервера: возвращается 400 с текстом причины,
// который фронт показывает покупателю как есть.
func (h *CouponsHandler) Validate(c *gin.Context) {
	var params ValidateCouponParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	discount, err := h.svs.Validate(reqCtx, params.Code, params.Amount, params.UserID)
	if err != nil {
		var rejectedErr *domain.CouponRejectedError
		if errors.As(err, &rejectedErr) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"valid":   false,
				"message": rejectedErr.Message,
			})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &ValidateCouponResponse{
		Valid:    true,
		Discount: discount.Discount.InexactFloat64(),
		Message:  discount.Message,
	})
}

type CouponResponse struct {
	ID             int64      `json:"id"`
	Code           string     `json:"code"`
	DiscountAmount float64    `json:"discount_amount"`
	MinAmount      float64    `json:"min_amount"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

func newCouponResponse(coupon *domain.Coupon) CouponResponse {
	return CouponResponse{
		ID:             coupon.ID,
		Code:           coupon.Code,
		DiscountAmount: coupon.DiscountAmount.InexactFloat64(),
		MinAmount:      coupon.MinAmount.InexactFloat64(),
		ExpiryDate:     coupon.ExpiryDate,
		IsActive:       coupon.IsActive,
		CreatedAt:      coupon.CreatedAt,
	}
}

// Index GET CouponsRoute.
func (h *CouponsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coupons, err := h.svs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CouponResponse, len(coupons))
	for i := range coupons {
		response[i] = newCouponResponse(&coupons[i])
	}
	c.JSON(http.StatusOK, response)
}

type CouponParams struct {
	Code           string          `json:"code" binding:"required"`
	DiscountAmount decimal.Decimal `json:"discount_amount" binding:"required,decimal_positive"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	ExpiryDate     *time.Time      `json:"expiry_date"`
	IsActive       *bool           `json:"is_active"`
}

func (p *CouponParams) toSaveArgs() repoargs.CouponSave {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return repoargs.CouponSave{
		Code:           p.Code,
		DiscountAmount: p.DiscountAmount,
		MinAmount:      p.MinAmount,
		ExpiryDate:     p.ExpiryDate,
		IsActive:       isActive,
	}
}

// Create POST CouponsRoute.
func (h *CouponsHandler) Create(c *gin.Context) {
	var params CouponParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coupon, err := h.svs.Create(reqCtx, params.toSaveArgs())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("coupon code already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newCouponResponse(coupon))
}

// Update PUT CouponRoute.
func (h *CouponsHandler) Update(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params CouponParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Update(reqCtx, id, params.toSaveArgs()); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Toggle PUT CouponToggleRoute.
func (h *CouponsHandler) Toggle(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.ToggleActive(reqCtx, id); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Delete DELETE CouponRoute.
func (h *CouponsHandler) Delete(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Delete(reqCtx, id); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}
