package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
)

type ProductsHandler struct {
	catalogSvs    CatalogServicer
	commissionSvs CommissionServicer
}

func NewProductsHandler(catalogSvs CatalogServicer, commissionSvs CommissionServicer) *ProductsHandler {
	return &ProductsHandler{
		catalogSvs:    catalogSvs,
		commissionSvs: commissionSvs,
	}
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func newProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Title:       product.Title,
		Price:       product.Price.InexactFloat64(),
		Description: product.Description,
		Image:       product.Image,
	}
}

// Index GET ProductsRoute.
func (h *ProductsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.catalogSvs.GetAll(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = newProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET ProductRoute.
func (h *ProductsHandler) Show(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.GetByID(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newProductResponse(product))
}

type ProductParams struct {
	Title                string           `json:"title" binding:"required"`
	Price                decimal.Decimal  `json:"price" binding:"required,decimal_positive"`
	Description          string           `json:"description"`
	Image                string           `json:"image"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
}

func (p *ProductParams) toSaveArgs() repoargs.ProductSave {
	return repoargs.ProductSave{
		Title:                p.Title,
		Price:                p.Price,
		Description:          p.Description,
		Image:                p.Image,
		CommissionPercentage: p.CommissionPercentage,
	}
}

// Create POST ProductsRoute.
func (h *ProductsHandler) Create(c *gin.Context) {
	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogSvs.Create(reqCtx, params.toSaveArgs())
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newProductResponse(product))
}

// Update PUT ProductRoute.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.catalogSvs.Update(reqCtx, id, params.toSaveArgs()); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Delete DELETE ProductRoute.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.catalogSvs.Delete(reqCtx, id); err != nil {
		abortCRUDError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

type ProductCommissionResponse struct {
	ProductPrice     float64 `json:"product_price"`
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
}

// Commission GET ProductCommissionRoute.
//
// Округление до копеек происходит только здесь, на выдаче.
func (h *ProductsHandler) Commission(c *gin.Context) {
	id, idErr := idParam(c, "id")
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commission, err := h.commissionSvs.ProductCommission(reqCtx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &ProductCommissionResponse{
		ProductPrice:     commission.ProductPrice.InexactFloat64(),
		CommissionRate:   commission.CommissionRate.InexactFloat64(),
		CommissionAmount: commission.CommissionAmount.Round(2).InexactFloat64(),
	})
}
