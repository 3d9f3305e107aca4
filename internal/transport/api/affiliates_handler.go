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

type AffiliatesHandler struct {
	affiliateSvs  AffiliateServicer
	commissionSvs CommissionServicer
}

func NewAffiliatesHandler(affiliateSvs AffiliateServicer, commissionSvs CommissionServicer) *AffiliatesHandler {
	return &AffiliatesHandler{
		affiliateSvs:  affiliateSvs,
		commissionSvs: commissionSvs,
	}
}

type UserResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	IsAffiliate   bool   `json:"is_affiliate"`
	AffiliateCode string `json:"affiliate_code,omitempty"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Country:       user.Country,
		IsAffiliate:   user.IsAffiliate,
		AffiliateCode: user.AffiliateCode,
	}
}

func (h *AffiliatesHandler) respondUsers(c *gin.Context, users []domain.User) {
	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

// Users GET UsersRoute.
func (h *AffiliatesHandler) Users(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.affiliateSvs.GetUsers(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	h.respondUsers(c, users)
}

// Index GET AffiliatesRoute.
func (h *AffiliatesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliates, err := h.affiliateSvs.GetAffiliates(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	h.respondUsers(c, affiliates)
}

type MakeAffiliateParams struct {
	AffiliateCode string `json:"affiliate_code" binding:"required"`
}

// MakeAffiliate PUT MakeAffiliateRoute.
func (h *AffiliatesHandler) MakeAffiliate(c *gin.Context) {
	userID, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params MakeAffiliateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.affiliateSvs.MakeAffiliate(reqCtx, userID, params.AffiliateCode); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("affiliate code already taken")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// RemoveAffiliate PUT RemoveAffiliateRoute.
func (h *AffiliatesHandler) RemoveAffiliate(c *gin.Context) {
	userID, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.affiliateSvs.RemoveAffiliate(reqCtx, userID); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type CommissionRateResponse struct {
	ID                   int64   `json:"id"`
	RateName             string  `json:"rate_name"`
	CommissionPercentage float64 `json:"commission_percentage"`
	MinSalesAmount       float64 `json:"min_sales_amount"`
	IsActive             bool    `json:"is_active"`
	CookieDuration       int32   `json:"cookie_duration"`
}

func newCommissionRateResponse(rate *domain.CommissionRate) CommissionRateResponse {
	return CommissionRateResponse{
		ID:                   rate.ID,
		RateName:             rate.RateName,
		CommissionPercentage: rate.CommissionPercentage.InexactFloat64(),
		MinSalesAmount:       rate.MinSalesAmount.InexactFloat64(),
		IsActive:             rate.IsActive,
		CookieDuration:       rate.CookieDuration,
	}
}

// Rates GET CommissionRatesRoute.
func (h *AffiliatesHandler) Rates(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rates, err := h.commissionSvs.Rates(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CommissionRateResponse, len(rates))
	for i := range rates {
		response[i] = newCommissionRateResponse(&rates[i])
	}
	c.JSON(http.StatusOK, response)
}

type CommissionRateParams struct {
	RateName             string          `json:"rate_name" binding:"required"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage" binding:"required,decimal_positive"`
	MinSalesAmount       decimal.Decimal `json:"min_sales_amount"`
	IsActive             *bool           `json:"is_active"`
	CookieDuration       int32           `json:"cookie_duration"`
}

func (p *CommissionRateParams) toSaveArgs() repoargs.CommissionRateSave {
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	return repoargs.CommissionRateSave{
		RateName:             p.RateName,
		CommissionPercentage: p.CommissionPercentage,
		MinSalesAmount:       p.MinSalesAmount,
		IsActive:             isActive,
		CookieDuration:       p.CookieDuration,
	}
}

// CreateRate POST CommissionRatesRoute.
func (h *AffiliatesHandler) CreateRate(c *gin.Context) {
	var params CommissionRateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.commissionSvs.CreateRate(reqCtx, params.toSaveArgs())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, newCommissionRateResponse(rate))
}

// UpdateRate PUT CommissionRateRoute.
func (h *AffiliatesHandler) UpdateRate(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params CommissionRateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.commissionSvs.UpdateRate(reqCtx, id, params.toSaveArgs()); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// DeleteRate DELETE CommissionRateRoute.
func (h *AffiliatesHandler) DeleteRate(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.commissionSvs.DeleteRate(reqCtx, id); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type CommissionResponse struct {
	ID               int64     `json:"id"`
	OrderID          string    `json:"order_id"`
	OrderAmount      float64   `json:"order_amount"`
	CommissionRate   float64   `json:"commission_rate"`
	CommissionAmount float64   `json:"commission_amount"`
	Status           string    `json:"status"`
	ReferralCode     string    `json:"referral_code"`
	CreatedAt        time.Time `json:"created_at"`

	AffiliateUsername string `json:"affiliate_username,omitempty"`
	AffiliateEmail    string `json:"affiliate_email,omitempty"`
}

func newCommissionResponse(commission *domain.AffiliateCommission) CommissionResponse {
	return CommissionResponse{
		ID:               commission.ID,
		OrderID:          commission.OrderID,
		OrderAmount:      commission.OrderAmount.InexactFloat64(),
		CommissionRate:   commission.CommissionRate.InexactFloat64(),
		CommissionAmount: commission.CommissionAmount.Round(2).InexactFloat64(),
		Status:           string(commission.Status),
		ReferralCode:     commission.ReferralCode,
		CreatedAt:        commission.CreatedAt,
	}
}

// Commissions GET AffiliateCommissionsRoute.
func (h *AffiliatesHandler) Commissions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commissions, err := h.commissionSvs.Commissions(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		item := newCommissionResponse(&commissions[i].AffiliateCommission)
		item.AffiliateUsername = commissions[i].AffiliateUsername
		item.AffiliateEmail = commissions[i].AffiliateEmail
		response[i] = item
	}
	c.JSON(http.StatusOK, response)
}

// CommissionsByAffiliate GET CommissionsByAffiliateRoute.
func (h *AffiliatesHandler) CommissionsByAffiliate(c *gin.Context) {
	affiliateID, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commissions, err := h.commissionSvs.CommissionsByAffiliate(reqCtx, affiliateID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		response[i] = newCommissionResponse(&commissions[i])
	}
	c.JSON(http.StatusOK, response)
}

type CommissionStatusParams struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCommissionStatus PUT CommissionStatusRoute.
func (h *AffiliatesHandler) UpdateCommissionStatus(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params CommissionStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	status := domain.CommissionStatusType(params.Status)
	if !domain.ValidCommissionStatus(status) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.commissionSvs.UpdateCommissionStatus(reqCtx, id, status); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}
