package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Park pages are mostly static reads; anything slower than this is worth a look.
const slowRequestThreshold = 250 * time.Millisecond

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[wwa] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > slowRequestThreshold {
			log.Printf("[wwa] SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
