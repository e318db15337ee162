package middleware

import (
	"bytes"
	"compress/gzip"
	"strings"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// Minimum response length to trigger compression
	MinLength int
	// Gzip compression level (1-9)
	Level int
}

// DefaultCompressionConfig returns the default compression configuration.
// Price history responses are long JSON arrays that compress well; small
// responses are sent uncompressed.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinLength: 1024,
		Level:     gzip.DefaultCompression,
	}
}

// Compression returns a middleware that gzips responses for clients that
// accept it. The response is buffered so the length check can happen
// before any bytes reach the wire.
func Compression(cfg CompressionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.Request.Header.Get("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gw := &gzipResponseWriter{
			ResponseWriter: c.Writer,
			minLength:      cfg.MinLength,
			level:          cfg.Level,
			buf:            new(bytes.Buffer),
		}
		c.Writer = gw
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		gw.finish()
	}
}

type gzipResponseWriter struct {
	gin.ResponseWriter
	minLength int
	level     int
	buf       *bytes.Buffer
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	return g.buf.Write(data)
}

func (g *gzipResponseWriter) WriteString(s string) (int, error) {
	return g.buf.WriteString(s)
}

func (g *gzipResponseWriter) finish() error {
	content := g.buf.Bytes()
	if len(content) < g.minLength {
		_, err := g.ResponseWriter.Write(content)
		return err
	}

	gz, err := gzip.NewWriterLevel(g.ResponseWriter, g.level)
	if err != nil {
		return err
	}
	g.Header().Set("Content-Encoding", "gzip")
	g.Header().Del("Content-Length")

	if _, err := gz.Write(content); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
