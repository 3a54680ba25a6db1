package traffic

import (
	"bytes"
	"errors"
	"image"
	"time"

	// register the image formats AttachImage accepts
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"rayhank.xyz/traffic-iot-service/pkg/blob"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

// ValueUpdate lists the fields a value owner may change after creation.
// Owner, device and taken_at are write-once; the image goes through
// AttachImage only.
type ValueUpdate struct {
	Value           *int
	CarCount        *int
	MotorcycleCount *int
	SmalltruckCount *int
	BigvehicleCount *int
}

// ValuePage is one fixed-size page of a device's value stream plus the
// total count and neighbouring page numbers (nil when no such page).
type ValuePage struct {
	Count    int64
	Next     *int
	Previous *int
	Results  []models.DeviceValue
}

func (t *Traffic) createValue(userID, deviceID uint, input *models.DeviceValue) (*models.DeviceValue, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryValue),
	)

	device, err := t.getDevice(userID, deviceID)
	if err != nil {
		return nil, err
	}

	// owner, device and capture timestamp come from the scope and the
	// server clock, never from the payload
	value := models.DeviceValue{
		UserID:          device.UserID,
		DeviceID:        device.ID,
		Value:           input.Value,
		CarCount:        input.CarCount,
		MotorcycleCount: input.MotorcycleCount,
		SmalltruckCount: input.SmalltruckCount,
		BigvehicleCount: input.BigvehicleCount,
		TakenAt:         time.Now(),
	}

	if err := t.Db.Conn.Create(&value).Error; err != nil {
		return nil, err
	}

	logger.Info("Created value", zap.Uint("device_id", deviceID), zap.Uint("value_id", value.ID))

	return &value, nil
}

func (t *Traffic) listValues(userID, deviceID uint, orderDirection string, page int) (*ValuePage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if orderDirection == "" {
		orderDirection = common.OrderDirectionLast
	}
	if orderDirection != common.OrderDirectionLast && orderDirection != common.OrderDirectionFirst {
		return nil, ErrInvalidOrderDirection
	}

	if _, err := t.getDevice(userID, deviceID); err != nil {
		return nil, err
	}

	var count int64
	err := t.Db.Conn.Model(&models.DeviceValue{}).
		Where("device_id = ? AND user_id = ?", deviceID, userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	// 'last' is the canonical newest-first order; 'first' is its exact
	// reverse, with the id tie-break inverted alongside the timestamp
	order := "taken_at desc, id desc"
	if orderDirection == common.OrderDirectionFirst {
		order = "taken_at asc, id asc"
	}

	var results []models.DeviceValue
	err = t.Db.Conn.
		Where("device_id = ? AND user_id = ?", deviceID, userID).
		Order(order).
		Offset((page - 1) * common.ValuePageSize).
		Limit(common.ValuePageSize).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	valuePage := ValuePage{Count: count, Results: results}
	// prev/next name pages that actually exist: past the end, prev clamps to
	// the last real page instead of pointing at another empty one
	lastPage := int((count + common.ValuePageSize - 1) / common.ValuePageSize)
	if page > 1 && lastPage > 0 {
		prev := min(page-1, lastPage)
		valuePage.Previous = &prev
	}
	if int64(page*common.ValuePageSize) < count {
		next := page + 1
		valuePage.Next = &next
	}
	return &valuePage, nil
}

func (t *Traffic) getValue(userID, deviceID, valueID uint) (*models.DeviceValue, error) {
	var value models.DeviceValue
	err := t.Db.Conn.
		Where("id = ? AND device_id = ? AND user_id = ?", valueID, deviceID, userID).
		First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (t *Traffic) updateValue(userID, deviceID, valueID uint, input *ValueUpdate) (*models.DeviceValue, error) {
	// counters stay non-negative on update just as on create
	for _, count := range []*int{input.CarCount, input.MotorcycleCount, input.SmalltruckCount, input.BigvehicleCount} {
		if count != nil && *count < 0 {
			return nil, ErrNegativeCount
		}
	}

	value, err := t.getValue(userID, deviceID, valueID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Value != nil {
		updates["value"] = *input.Value
	}
	if input.CarCount != nil {
		updates["car_count"] = *input.CarCount
	}
	if input.MotorcycleCount != nil {
		updates["motorcycle_count"] = *input.MotorcycleCount
	}
	if input.SmalltruckCount != nil {
		updates["smalltruck_count"] = *input.SmalltruckCount
	}
	if input.BigvehicleCount != nil {
		updates["bigvehicle_count"] = *input.BigvehicleCount
	}

	if len(updates) > 0 {
		if err := t.Db.Conn.Model(value).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (t *Traffic) deleteValue(userID, deviceID, valueID uint) error {
	value, err := t.getValue(userID, deviceID, valueID)
	if err != nil {
		return err
	}

	if err := t.Db.Conn.Delete(value).Error; err != nil {
		return err
	}

	// the row is gone; a failed blob release must not fail the deletion
	if value.ImagePath != "" {
		if err := t.Blob.Delete(value.ImagePath); err != nil {
			logger := common.GetLoggerWith(
				common.LoggerNameTrafficCore,
				zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryValue),
			)
			logger.Warn("Failed to release deleted value's image blob", zap.String("path", value.ImagePath), zap.Error(err))
		}
	}
	return nil
}

// imageExtensions maps the formats registered above to stored file extensions.
var imageExtensions = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"gif":  ".gif",
}

func (t *Traffic) attachImage(userID, deviceID, valueID uint, data []byte) (*models.DeviceValue, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryValue),
	)

	value, err := t.getValue(userID, deviceID, valueID)
	if err != nil {
		return nil, err
	}

	// validate before touching storage so a bad upload leaves any previous
	// attachment intact
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotAnImage
	}
	ext, ok := imageExtensions[format]
	if !ok {
		return nil, ErrNotAnImage
	}

	newPath := blob.ImagePath(ext)
	if err := t.Blob.Save(newPath, data); err != nil {
		return nil, err
	}

	oldPath := value.ImagePath
	if err := t.Db.Conn.Model(value).Update("image_path", newPath).Error; err != nil {
		// keep the store consistent with the record, drop the orphan
		_ = t.Blob.Delete(newPath)
		return nil, err
	}

	if oldPath != "" {
		if err := t.Blob.Delete(oldPath); err != nil {
			logger.Warn("Failed to release replaced image blob", zap.String("path", oldPath), zap.Error(err))
		}
	}

	logger.Info("Attached image to value", zap.Uint("value_id", valueID), zap.String("path", newPath))

	return value, nil
}

type IValueImpl struct {
	traffic *Traffic
}

func (iv *IValueImpl) CreateValue(userID, deviceID uint, input *models.DeviceValue) (*models.DeviceValue, error) {
	return iv.traffic.createValue(userID, deviceID, input)
}

func (iv *IValueImpl) ListValues(userID, deviceID uint, orderDirection string, page int) (*ValuePage, error) {
	return iv.traffic.listValues(userID, deviceID, orderDirection, page)
}

func (iv *IValueImpl) GetValue(userID, deviceID, valueID uint) (*models.DeviceValue, error) {
	return iv.traffic.getValue(userID, deviceID, valueID)
}

func (iv *IValueImpl) UpdateValue(userID, deviceID, valueID uint, input *ValueUpdate) (*models.DeviceValue, error) {
	return iv.traffic.updateValue(userID, deviceID, valueID, input)
}

func (iv *IValueImpl) DeleteValue(userID, deviceID, valueID uint) error {
	return iv.traffic.deleteValue(userID, deviceID, valueID)
}

func (iv *IValueImpl) AttachImage(userID, deviceID, valueID uint, data []byte) (*models.DeviceValue, error) {
	return iv.traffic.attachImage(userID, deviceID, valueID, data)
}

func (t *Traffic) GetIValue() IValue {
	return &IValueImpl{traffic: t}
}
