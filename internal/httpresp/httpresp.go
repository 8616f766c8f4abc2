// Package httpresp maps usecase errors onto JSON responses.
package httpresp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-invoice-service/internal/apperr"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	// Amounts go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type ErrorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Error writes err with the status that matches its kind. Store failures are logged
// and reported with a generic message.
func Error(c *gin.Context, log logger.ZapLogger, err error, storeMsg string) {
	var v *apperr.ValidationError
	switch {
	case errors.As(err, &v):
		c.JSON(http.StatusBadRequest, ErrorBody{Error: "Validation failed", Details: v.Details})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorBody{Error: err.Error()})
	default:
		log.Error(storeMsg, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: storeMsg, Details: []string{err.Error()}})
	}
}

func BadRequest(c *gin.Context, msg string, details ...string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: msg, Details: details})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: msg})
}

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter, falling back to def when it
// is absent or malformed.
func QueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
