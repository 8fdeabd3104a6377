package response

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkgErrors "catalog-srv/pkg/errors"
	"catalog-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given payload as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else collapses into a generic 500 so internal detail never
// reaches the caller. Server-side failures are reported to Discord when a
// webhook is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notify(c, d, fmt.Sprintf("`%s %s` failed: %s", c.Request.Method, c.Request.URL.Path, httpErr.Message))
		}
		c.JSON(httpErr.StatusCode, Resp{Error: httpErr.Message})
		return
	}

	notify(c, d, fmt.Sprintf("`%s %s` failed: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{Error: InternalServerErrorMessage})
}

// PanicError writes the generic 500 response for a recovered panic and alerts
// Discord with the panic value.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	notify(c, d, fmt.Sprintf("panic on `%s %s`: %v", c.Request.Method, c.Request.URL.Path, recovered))
	c.JSON(http.StatusInternalServerError, Resp{Error: InternalServerErrorMessage})
}

// notify reports asynchronously so alerting latency never affects the caller.
func notify(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = d.ReportBug(ctx, message)
	}()
}
