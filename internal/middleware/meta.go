package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nextup-mentor/nextup-api/pkg/middleware/requestid"
)

const (
	responseMetaKey = "response_meta"
	metaStartKey    = "response_meta_start"
	cacheHitKey     = "cache_hit"
)

// WithResponseMeta starts the metadata map that handlers add to before they
// reply. Handlers read it back with ResponseMeta.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(metaStartKey, time.Now())
		c.Set(responseMetaKey, map[string]interface{}{})
		c.Next()
	}
}

// SetMeta stores one metadata value for the current response.
func SetMeta(c *gin.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	ensureMeta(c)[key] = value
}

// SetCacheHit records whether the payload was served from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	SetMeta(c, cacheHitKey, hit)
}

// ExtractMeta returns the raw metadata map stored on the context.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

// ResponseMeta returns a copy of the collected metadata with the elapsed
// time, the request id and the display currency filled in.
func ResponseMeta(c *gin.Context) map[string]interface{} {
	out := map[string]interface{}{}
	if c == nil {
		return out
	}
	for k, v := range ExtractMeta(c) {
		out[k] = v
	}
	if v, ok := c.Get(metaStartKey); ok {
		if start, ok := v.(time.Time); ok {
			out["processing_time_ms"] = time.Since(start).Milliseconds()
		}
	}
	if id := requestid.Value(c); id != "" {
		out["request_id"] = id
	}
	if _, ok := c.Get(contextCurrencyKey); ok {
		out["currency"] = CurrencyUnit(c)
	}
	return out
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := map[string]interface{}{}
	c.Set(responseMetaKey, meta)
	return meta
}
