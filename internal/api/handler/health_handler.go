package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler exposes liveness and readiness probes. Readiness pings the
// backing stores.
type HealthHandler struct {
	mongo *mongo.Client
	redis *goredis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *goredis.Client) *HealthHandler {
	return &HealthHandler{mongo: mongoClient, redis: redisClient}
}

func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()
	status := map[string]string{"mongo": "ok", "redis": "ok"}
	healthy := true

	if err := h.mongo.Ping(ctx, readpref.Primary()); err != nil {
		status["mongo"] = err.Error()
		healthy = false
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
