package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-shop/internal/domain"
)

// idParam извлекает целочисленный параметр пути.
func idParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64) //nolint:wrapcheck
}

// abortCRUDError транслирует типовые ошибки CRUD-операций в http статусы.
func abortCRUDError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateKey):
		c.AbortWithStatus(http.StatusConflict)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
