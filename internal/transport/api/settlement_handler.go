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
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/fsdevblog/groph-shop/internal/transport/gateway"
)

type SettlementHandler struct {
	svs SettlementServicer
}

func NewSettlementHandler(svs SettlementServicer) *SettlementHandler {
	return &SettlementHandler{
		svs: svs,
	}
}

type CreateCheckoutSessionParams struct {
	Amount decimal.Decimal `json:"amount" binding:"required,decimal_positive"`
	UserID int64           `json:"user_id" binding:"required"`
}

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}

// CreateSession POST CreateCheckoutSessionRoute.
//
// Тонкий прокси к шлюзу: сессия создается на присланную фронтом сумму, в ответе
// только URL hosted-чекаута.
func (h *SettlementHandler) CreateSession(c *gin.Context) {
	var params CreateCheckoutSessionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, SettlementTimeout)
	defer cancel()

	sessionURL, err := h.svs.CreateCheckoutSession(reqCtx, params.Amount)
	if err != nil {
		var statusErr *gateway.StatusCodeError
		if errors.As(err, &statusErr) {
			_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &CreateCheckoutSessionResponse{URL: sessionURL})
}

type SaveTransactionParams struct {
	SessionID    string `json:"session_id" binding:"required"`
	UserID       int64  `json:"user_id" binding:"required"`
	ReferralCode string `json:"referral_code"`
}

type SaveTransactionResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
}

// Save POST SaveTransactionRoute.
//
// Повторный запрос с той же платежной сессией вернет тот же transaction_id:
// эндпоинт идемпотентен, клиент может безопасно ретраить.
func (h *SettlementHandler) Save(c *gin.Context) {
	var params SaveTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, SettlementTimeout)
	defer cancel()

	transaction, err := h.svs.Settle(reqCtx, service.SettleArgs{
		SessionID:    params.SessionID,
		UserID:       params.UserID,
		ReferralCode: params.ReferralCode,
	})
	if err != nil {
		var statusErr *gateway.StatusCodeError
		if errors.As(err, &statusErr) {
			_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &SaveTransactionResponse{
		Success:       true,
		TransactionID: transaction.TransactionID,
	})
}

type TransactionDetailsResponse struct {
	TransactionID string                     `json:"transaction_id"`
	Amount        float64                    `json:"amount"`
	Currency      string                     `json:"currency"`
	Email         string                     `json:"email"`
	Status        string                     `json:"status"`
	CreatedAt     time.Time                  `json:"created_at"`
	Products      []repoargs.PricedOrderItem `json:"products"`
}

// Details GET TransactionDetailsRoute.
func (h *SettlementHandler) Details(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.svs.Details(reqCtx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &TransactionDetailsResponse{
		TransactionID: details.Transaction.TransactionID,
		Amount:        details.Transaction.Amount.InexactFloat64(),
		Currency:      details.Transaction.Currency,
		Email:         details.Transaction.Email,
		Status:        details.Transaction.Status,
		CreatedAt:     details.Transaction.CreatedAt,
		Products:      details.Products,
	})
}
