package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/logger"
	"github.com/yukikurage/freelance-marketplace-api/internal/query"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/session"
)

// respondCommonError handles the failures every handler shares: input
// validation, cancelled requests and anything unexpected.
func respondCommonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondInvalid(c, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		apierrors.RequestCancelled(c)
	case errors.Is(err, session.ErrSuperseded):
		apierrors.Conflict(c, "Session changed while the request was in flight")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		logger.L().Error("Unhandled service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		apierrors.InternalError(c, "")
	}
}

func respondInvalid(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		apierrors.ValidationFailed(c, err)
		return
	}
	msg := strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
	apierrors.BadRequest(c, msg)
}

// bindJSON decodes the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.ValidationFailed(c, err)
		return false
	}
	return true
}

// queryList reads a list parameter given either repeated or comma separated.
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// queryFloat returns nil when the parameter is absent or not a finite number.
func queryFloat(c *gin.Context, key string) *float64 {
	v, ok := query.ParseBound(c.Query(key))
	if !ok {
		return nil
	}
	return &v
}
