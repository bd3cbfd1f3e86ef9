package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/shoplite/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the client-supplied key for replay protection
const IdempotencyKeyHeader = "Idempotency-Key"

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a request that carries an
// Idempotency-Key already seen within the TTL, instead of executing the
// handler again. Requests without the header pass through untouched. Only
// successful responses are stored, so a client may retry a failed request
// with the same key.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logger.GetGinLogger(c)

		if data, found, err := store.Get(ctx, key); err != nil {
			// Store failure degrades to non-idempotent processing rather
			// than rejecting the request.
			log.Warn("idempotency store read failed", zap.Error(err))
		} else if found {
			var stored storedResponse
			if err := json.Unmarshal(data, &stored); err == nil {
				c.Header("Idempotency-Replayed", "true")
				c.Data(stored.Status, "application/json", stored.Body)
				c.Abort()
				return
			}
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		payload, err := json.Marshal(storedResponse{Status: status, Body: writer.body.Bytes()})
		if err != nil {
			return
		}
		if err := store.Set(ctx, key, payload, ttl); err != nil {
			log.Warn("idempotency store write failed", zap.Error(err))
		}
	}
}
