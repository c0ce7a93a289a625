package router

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency. Query strings are left
// out on purpose: search queries are user content.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
