package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInputMiddleware strips HTML from every string field of a
// mutating JSON request, including nested objects and arrays, before
// the handler binds it.
func SanitizeInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}

		var body map[string]interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		sanitized := sanitizeValue(policy, body)

		newBody, _ := json.Marshal(sanitized)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(policy *bluemonday.Policy, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return policy.Sanitize(val)
	case map[string]interface{}:
		for k, item := range val {
			val[k] = sanitizeValue(policy, item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = sanitizeValue(policy, item)
		}
		return val
	default:
		return v
	}
}
