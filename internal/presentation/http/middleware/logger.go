package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware tags each request with an ID and logs one line per request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		short := requestID
		if len(short) > 8 {
			short = short[:8]
		}

		operator := "-"
		if id := GetOperatorID(c); id != uuid.Nil {
			operator = c.GetString(ContextUsername)
		}

		log.Printf("[%s] %s | %d | %v | %s | %s | %s",
			short,
			c.Request.Method,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			operator,
			path,
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", short, e.Err)
		}
	}
}
