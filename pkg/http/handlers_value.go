package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

type ValueRequest struct {
	Value           int `json:"value"`
	CarCount        int `json:"car_count"`
	MotorcycleCount int `json:"motorcycle_count"`
	SmalltruckCount int `json:"smalltruck_count"`
	BigvehicleCount int `json:"bigvehicle_count"`
}

// counts default to zero when omitted; value's documented 1-5 range is not
// enforced, matching the stored field
var valueRequestSchema = z.Struct(z.Shape{
	"Value":           z.Int(),
	"CarCount":        z.Int().GTE(0),
	"MotorcycleCount": z.Int().GTE(0),
	"SmalltruckCount": z.Int().GTE(0),
	"BigvehicleCount": z.Int().GTE(0),
})

type ValuePageResponse struct {
	Count    int64                `json:"count"`
	Next     *int                 `json:"next"`
	Previous *int                 `json:"previous"`
	Results  []models.DeviceValue `json:"results"`
}

func (rs *RestfulServer) ListValues(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	orderDirection := c.DefaultQuery("order_direction", common.OrderDirectionLast)

	page := 1
	if rawPage := c.Query("page"); rawPage != "" {
		parsed, err := strconv.Atoi(rawPage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": traffic.ErrInvalidPage.Error()})
			return
		}
		page = parsed
	}

	valuePage, err := rs.Traffic.Value.ListValues(user.ID, deviceID, orderDirection, page)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValuePageResponse{
		Count:    valuePage.Count,
		Next:     valuePage.Next,
		Previous: valuePage.Previous,
		Results:  valuePage.Results,
	})
}

func (rs *RestfulServer) PostValue(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, ok := uintParam(c, "device_id")
	if !ok {
		notFound(c)
		return
	}

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ValueRequest
	if err := valueRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	value, err := rs.Traffic.Value.CreateValue(user.ID, deviceID, &models.DeviceValue{
		Value:           req.Value,
		CarCount:        req.CarCount,
		MotorcycleCount: req.MotorcycleCount,
		SmalltruckCount: req.SmalltruckCount,
		BigvehicleCount: req.BigvehicleCount,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, value)
}

func (rs *RestfulServer) GetValue(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, okDevice := uintParam(c, "device_id")
	valueID, okValue := uintParam(c, "value_id")
	if !okDevice || !okValue {
		notFound(c)
		return
	}

	value, err := rs.Traffic.Value.GetValue(user.ID, deviceID, valueID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}

type ValuePatchRequest struct {
	Value           *int `json:"value"`
	CarCount        *int `json:"car_count"`
	MotorcycleCount *int `json:"motorcycle_count"`
	SmalltruckCount *int `json:"smalltruck_count"`
	BigvehicleCount *int `json:"bigvehicle_count"`
}

func (rs *RestfulServer) UpdateValue(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, okDevice := uintParam(c, "device_id")
	valueID, okValue := uintParam(c, "value_id")
	if !okDevice || !okValue {
		notFound(c)
		return
	}

	// only the fields below are mutable; "user", "device" and "taken_at"
	// keys in the payload are dropped without failing the request
	var req ValuePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := rs.Traffic.Value.UpdateValue(user.ID, deviceID, valueID, &traffic.ValueUpdate{
		Value:           req.Value,
		CarCount:        req.CarCount,
		MotorcycleCount: req.MotorcycleCount,
		SmalltruckCount: req.SmalltruckCount,
		BigvehicleCount: req.BigvehicleCount,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}

func (rs *RestfulServer) DeleteValue(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, okDevice := uintParam(c, "device_id")
	valueID, okValue := uintParam(c, "value_id")
	if !okDevice || !okValue {
		notFound(c)
		return
	}

	if err := rs.Traffic.Value.DeleteValue(user.ID, deviceID, valueID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rs *RestfulServer) UploadValueImage(c *gin.Context) {
	user, _ := CurrentUser(c)

	deviceID, okDevice := uintParam(c, "device_id")
	valueID, okValue := uintParam(c, "value_id")
	if !okDevice || !okValue {
		notFound(c)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file could not be read"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file could not be read"})
		return
	}

	value, err := rs.Traffic.Value.AttachImage(user.ID, deviceID, valueID, data)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, value)
}
