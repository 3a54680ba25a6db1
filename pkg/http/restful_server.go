package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

type RestfulServer struct {
	Server           *gin.Engine
	Traffic          *traffic.Traffic
	RateLimiterStore *traffic.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID uint) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID uint, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")

	api.POST("/user/create", rs.CreateUser)
	api.POST("/user/token", rs.CreateToken)

	// public read; authenticated callers are still owner-scoped by the handler
	api.GET("/devices/:device_id/latest-value", rs.OptionalAuth(), rs.GetDeviceLatestValue)

	authed := api.Group("", rs.RequireAuth())
	{
		authed.GET("/user/person", rs.GetPerson)
		authed.PATCH("/user/person", rs.UpdatePerson)

		authed.GET("/devices", rs.ListDevices)
		authed.POST("/devices", rs.CreateDevice)

		device := authed.Group("/devices/:device_id")
		{
			device.GET("", rs.GetDevice)
			device.PATCH("", rs.UpdateDevice)
			device.DELETE("", rs.DeleteDevice)
			device.POST("/limiter", rs.PostLimiter)

			device.GET("/values", rs.ListValues)
			device.POST("/values", rs.PostValue)
			device.GET("/values/:value_id", rs.GetValue)
			device.PATCH("/values/:value_id", rs.UpdateValue)
			device.DELETE("/values/:value_id", rs.DeleteValue)
			device.POST("/values/:value_id/upload-image", rs.UploadValueImage)
		}

		authed.GET("/todos", rs.ListTodos)
		authed.POST("/todos", rs.CreateTodo)
		authed.GET("/todos/:todo_id", rs.GetTodo)
		authed.PATCH("/todos/:todo_id", rs.UpdateTodo)
		authed.DELETE("/todos/:todo_id", rs.DeleteTodo)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// uintParam parses a numeric path parameter. A non-numeric id cannot name
// any resource, so it reports false and the caller renders not-found.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

// renderError maps domain errors onto status codes; anything unclassified is
// a store failure.
func (rs *RestfulServer) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, traffic.ErrNotFound):
		notFound(c)
	case errors.Is(err, traffic.ErrEmailRequired),
		errors.Is(err, traffic.ErrEmailTaken),
		errors.Is(err, traffic.ErrInvalidPage),
		errors.Is(err, traffic.ErrInvalidOrderDirection),
		errors.Is(err, traffic.ErrNegativeCount),
		errors.Is(err, traffic.ErrNotAnImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, traffic.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
