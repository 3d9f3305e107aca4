package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	svs CartServicer
}

func NewCartHandler(svs CartServicer) *CartHandler {
	return &CartHandler{
		svs: svs,
	}
}

type CartAddParams struct {
	UserID    int64 `json:"user_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
	Qty       int32 `json:"qty" binding:"required,gt=0"`
}

// Add POST CartAddRoute.
//
// Повторное добавление того же товара суммирует количество, новая строка не
// создается.
func (h *CartHandler) Add(c *gin.Context) {
	var params CartAddParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.AddItem(reqCtx, params.UserID, params.ProductID, params.Qty); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.AbortWithStatus(http.StatusCreated)
}

// Index GET CartRoute.
func (h *CartHandler) Index(c *gin.Context) {
	userID, idErr := idParam(c, "user_id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.svs.GetByUserID(reqCtx, userID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, items)
}

type CartUpdateParams struct {
	CartID int64 `json:"cart_id" binding:"required"`
	Qty    int32 `json:"qty" binding:"required,gt=0"`
}

// UpdateQty POST CartUpdateRoute.
func (h *CartHandler) UpdateQty(c *gin.Context) {
	var params CartUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.UpdateQty(reqCtx, params.CartID, params.Qty); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Remove DELETE CartRemoveRoute.
func (h *CartHandler) Remove(c *gin.Context) {
	cartID, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.RemoveItem(reqCtx, cartID); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}
