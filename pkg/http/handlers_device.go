package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

type DeviceRequest struct {
	DeviceName    string `json:"device_name"`
	DevicePurpose string `json:"device_purpose"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"DeviceName":    z.String().Required(),
	"DevicePurpose": z.String(),
})

type DeviceResponse struct {
	ID            uint                `json:"id"`
	DeviceName    string              `json:"device_name"`
	DevicePurpose string              `json:"device_purpose"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	LatestValue   *models.DeviceValue `json:"latest_value"`
}

func deviceResponse(device *models.IoTDevice, latest *models.DeviceValue) DeviceResponse {
	return DeviceResponse{
		ID:            device.ID,
		DeviceName:    device.DeviceName,
		DevicePurpose: device.DevicePurpose,
		CreatedAt:     device.CreatedAt,
		UpdatedAt:     device.UpdatedAt,
		LatestValue:   latest,
	}
}

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	user, _ := CurrentUser(c)

	devices, err := rs.Traffic.Device.ListDevices(user.ID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(devices, func(d traffic.DeviceWithLatest) DeviceResponse {
		return deviceResponse(&d.Device, d.Latest)
	}))
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	user, _ := CurrentUser(c)

	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Traffic.Device.CreateDevice(user.ID, &models.IoTDevice{
		DeviceName:    req.DeviceName,
		DevicePurpose: req.DevicePurpose,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deviceResponse(device, nil))
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	device, err := rs.Traffic.Device.GetDevice(user.ID, deviceID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	latest, err := rs.Traffic.Latest.LatestValue(device.ID, &user.ID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, deviceResponse(device, latest))
}

type DevicePatchRequest struct {
	DeviceName    *string `json:"device_name"`
	DevicePurpose *string `json:"device_purpose"`
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	var req DevicePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := rs.Traffic.Device.UpdateDevice(user.ID, deviceID, &traffic.DeviceUpdate{
		DeviceName:    req.DeviceName,
		DevicePurpose: req.DevicePurpose,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, deviceResponse(device, nil))
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	if err := rs.Traffic.Device.DeleteDevice(user.ID, deviceID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDeviceLatestValue serves the public latest-value read. Anonymous
// requesters may read any device's latest value; authenticated requesters
// stay owner-scoped, so someone else's device looks absent.
func (rs *RestfulServer) GetDeviceLatestValue(c *gin.Context) {
	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	var requesterID *uint
	if user, authed := CurrentUser(c); authed {
		if _, err := rs.Traffic.Device.GetDevice(user.ID, deviceID); err != nil {
			rs.renderError(c, err)
			return
		}
		requesterID = &user.ID
	}

	latest, err := rs.Traffic.Latest.LatestValue(deviceID, requesterID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No values found for this device."})
		return
	}

	c.JSON(http.StatusOK, latest)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	// only a device's owner may tune its ingestion limiter
	if _, err := rs.Traffic.Device.GetDevice(user.ID, deviceID); err != nil {
		rs.renderError(c, err)
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
