package httpHandler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"starwars-api/apierror"
	"starwars-api/entities"
	"starwars-api/logging"
	"starwars-api/usecases"
)

const (
	currentUserKey  = "current_user"
	requestIDHeader = "X-Request-ID"
)

// ErrorHandler renders the last error attached to the context as
// {message, status_code}. It is the only place errors become responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		apiErr, known := apierror.From(err)
		if !known {
			logging.WithFields(c.Request.Context(), map[string]interface{}{
				"error":  err.Error(),
				"method": c.Request.Method,
				"path":   c.FullPath(),
			}).Error("request failed")
		}
		c.JSON(apiErr.StatusCode, apiErr)
	}
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		logging.WithFields(c.Request.Context(), map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}).Info("request completed")
	}
}

// RequireToken resolves "Authorization: Bearer <token>" to the calling user.
func RequireToken(authUC *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, apierror.Unauthorized("Missing authorization header"))
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			abortWith(c, apierror.Unauthorized("Invalid authorization header format"))
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireToken.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	// gin defers the header until a body is written; flush it for empty replies
	c.Writer.WriteHeaderNow()
}
