package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, reusing a well-formed incoming
// one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// visitorHasher turns client IPs into short salted hashes so page views
// can be told apart in the log without recording addresses.
type visitorHasher struct {
	salt string
}

func newVisitorHasher() *visitorHasher {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate visitor salt:", err)
	}
	return &visitorHasher{salt: hex.EncodeToString(bytes)}
}

func (h *visitorHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

var untrackedPrefixes = []string{"/images/", "/api/", "/healthz", "/favicon"}

// pageViews logs page views with a hashed visitor id. Static files, API
// calls and requests carrying DNT: 1 are not logged.
func pageViews(h *visitorHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()
		log.Printf("Page view %s status=%d visitor=%s request=%s",
			path, c.Writer.Status(), h.hash(c.ClientIP()), c.GetString("request_id"))
	}
}
