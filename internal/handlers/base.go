package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

// statusByKind is the single error-kind to HTTP status table shared by every
// resource.
var statusByKind = map[services.Kind]int{
	services.KindInvalid:      http.StatusBadRequest,
	services.KindUnauthorized: http.StatusUnauthorized,
	services.KindForbidden:    http.StatusForbidden,
	services.KindNotFound:     http.StatusNotFound,
	services.KindConflict:     http.StatusConflict,
	services.KindUnknown:      http.StatusInternalServerError,
}

// RespondError writes err as {"error", "code"} with the mapped status.
// Anything that is not a domain error is reported as UNKNOWN.
func RespondError(c *gin.Context, err error) {
	var domainErr *services.Error
	if !errors.As(err, &domainErr) {
		domainErr = services.ErrUnknown
	}

	status, ok := statusByKind[domainErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"error": domainErr.Message,
		"code":  domainErr.Code,
	})
}

// Paging holds the list defaults shared by the handlers.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// getPagination reads ?page and ?limit. Missing values fall back to defaults;
// non-numeric or non-positive values are rejected; limit is clamped to MaxLimit.
func (p Paging) getPagination(c *gin.Context) (services.Page, error) {
	page, err := positiveQuery(c, "page", 1)
	if err != nil {
		return services.Page{}, err
	}
	limit, err := positiveQuery(c, "limit", p.DefaultLimit)
	if err != nil {
		return services.Page{}, err
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	return services.Page{Page: page, Limit: limit}, nil
}

func positiveQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, services.ErrInvalidPagination
	}
	return n, nil
}

// bindJSON decodes the request body into obj. An empty body leaves obj zeroed
// so the service reports which field is missing.
func bindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return services.ErrInvalidInput
	}
	return nil
}
