package cors

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Options tunes the CORS middleware. A zero value allows every origin.
type Options struct {
	AllowedOrigins []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAgeSeconds  int
}

var defaultHeaders = []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-ID", "X-Currency"}

// New returns a CORS middleware honouring a list of allowed origins.
// Credentialed requests get their own origin echoed back, never the wildcard.
func New(opts Options) gin.HandlerFunc {
	allowAll := len(opts.AllowedOrigins) == 0
	originSet := make(map[string]struct{}, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		originSet[strings.TrimRight(origin, "/")] = struct{}{}
	}

	headers := opts.AllowedHeaders
	if len(headers) == 0 {
		headers = defaultHeaders
	}
	exposed := opts.ExposedHeaders
	if len(exposed) == 0 {
		exposed = []string{"X-Request-ID", "Content-Disposition"}
	}
	maxAge := opts.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = 600
	}
	allowHeaders := strings.Join(headers, ", ")
	exposeHeaders := strings.Join(exposed, ", ")
	maxAgeValue := strconv.Itoa(maxAge)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()
		if origin != "" {
			if allowAll || hasOrigin(originSet, origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		} else if allowAll {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		h.Set("Vary", "Origin")
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Expose-Headers", exposeHeaders)
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Max-Age", maxAgeValue)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func hasOrigin(originSet map[string]struct{}, origin string) bool {
	_, ok := originSet[strings.TrimRight(origin, "/")]
	return ok
}
