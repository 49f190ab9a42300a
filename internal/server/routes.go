package server

import (
	"encoding/base64"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/danmuck/spritelist/internal/listing"
	"github.com/danmuck/spritelist/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	headerBytes   = "X-Listing-Bytes"
	headerRecords = "X-Listing-Records"
	version       = "0.1.0"
)

// verifyExpansion bounds a verify body: base64 data plus its listing, which
// renders each byte in at most five characters.
const verifyExpansion = 8

type verifyRequest struct {
	Data    string `json:"data"`
	Listing string `json:"listing"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": version,
		})
	})

	s.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"service": s.ID,
			"version": version,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/listing", s.handleListing)
	s.router.POST("/listing/verify", s.handleVerify)
}

func (s *Server) handleListing(c *gin.Context) {
	start := time.Now()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.MaxBodyBytes)
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		observability.RecordConversion(observability.SourceHTTP, 0, 0, time.Since(start), false)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text := listing.Append(nil, data)
	records := listing.Records(len(data))
	observability.RecordConversion(observability.SourceHTTP, len(data), records, time.Since(start), true)
	log.Debug().
		Str("server", s.ID).
		Int("bytes", len(data)).
		Int("records", records).
		Msg("listing rendered")

	c.Header(headerBytes, strconv.Itoa(len(data)))
	c.Header(headerRecords, strconv.Itoa(records))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", text)
}

func (s *Server) handleVerify(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, verifyBodyLimit(s.MaxBodyBytes))
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is not base64: " + err.Error()})
		return
	}

	if err := listing.Verify(data, []byte(req.Listing)); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func verifyBodyLimit(maxBody int64) int64 {
	if maxBody > math.MaxInt64/verifyExpansion {
		return math.MaxInt64
	}
	return maxBody * verifyExpansion
}
