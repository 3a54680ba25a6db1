package traffic

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

// DeviceUpdate lists the fields a device owner may change. The owning user
// is write-once and timestamps are server-assigned.
type DeviceUpdate struct {
	DeviceName    *string
	DevicePurpose *string
}

// DeviceWithLatest annotates a device with its most recent value, nil when
// the device has no values yet.
type DeviceWithLatest struct {
	Device models.IoTDevice
	Latest *models.DeviceValue
}

func (t *Traffic) createDevice(userID uint, input *models.IoTDevice) (*models.IoTDevice, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryDevice),
	)

	device := models.IoTDevice{
		UserID:        userID,
		DeviceName:    input.DeviceName,
		DevicePurpose: input.DevicePurpose,
	}

	if err := t.Db.Conn.Create(&device).Error; err != nil {
		return nil, err
	}

	logger.Info("Created device", zap.Uint("user_id", userID), zap.Uint("device_id", device.ID))

	return &device, nil
}

func (t *Traffic) listDevices(userID uint) ([]DeviceWithLatest, error) {
	var devices []models.IoTDevice
	err := t.Db.Conn.
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&devices).Error
	if err != nil {
		return nil, err
	}

	// one resolver call per device; a device without values annotates as nil
	// instead of failing the listing
	annotated := make([]DeviceWithLatest, len(devices))
	for i, device := range devices {
		latest, err := t.latestValue(device.ID, &userID)
		if err != nil {
			return nil, err
		}
		annotated[i] = DeviceWithLatest{Device: device, Latest: latest}
	}
	return annotated, nil
}

// getDevice is the scoping choke point for all nested device and value
// access: a device that exists but belongs to someone else is reported
// exactly like a device that does not exist.
func (t *Traffic) getDevice(userID, deviceID uint) (*models.IoTDevice, error) {
	var device models.IoTDevice
	err := t.Db.Conn.
		Where("id = ? AND user_id = ?", deviceID, userID).
		First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (t *Traffic) updateDevice(userID, deviceID uint, input *DeviceUpdate) (*models.IoTDevice, error) {
	device, err := t.getDevice(userID, deviceID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.DeviceName != nil {
		updates["device_name"] = *input.DeviceName
	}
	if input.DevicePurpose != nil {
		updates["device_purpose"] = *input.DevicePurpose
	}

	if len(updates) > 0 {
		if err := t.Db.Conn.Model(device).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return device, nil
}

func (t *Traffic) deleteDevice(userID, deviceID uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryDevice),
	)

	device, err := t.getDevice(userID, deviceID)
	if err != nil {
		return err
	}

	// collect image paths before the row cascade removes the value records
	var imagePaths []string
	err = t.Db.Conn.Model(&models.DeviceValue{}).
		Where("device_id = ? AND image_path <> ''", deviceID).
		Pluck("image_path", &imagePaths).Error
	if err != nil {
		return err
	}

	if err := t.Db.Conn.Delete(device).Error; err != nil {
		return err
	}

	for _, path := range imagePaths {
		if err := t.Blob.Delete(path); err != nil {
			logger.Warn("Failed to release image blob", zap.String("path", path), zap.Error(err))
		}
	}

	logger.Info("Deleted device", zap.Uint("user_id", userID), zap.Uint("device_id", deviceID))

	return nil
}

type IDeviceImpl struct {
	traffic *Traffic
}

func (id *IDeviceImpl) CreateDevice(userID uint, input *models.IoTDevice) (*models.IoTDevice, error) {
	return id.traffic.createDevice(userID, input)
}

func (id *IDeviceImpl) ListDevices(userID uint) ([]DeviceWithLatest, error) {
	return id.traffic.listDevices(userID)
}

func (id *IDeviceImpl) GetDevice(userID, deviceID uint) (*models.IoTDevice, error) {
	return id.traffic.getDevice(userID, deviceID)
}

func (id *IDeviceImpl) UpdateDevice(userID, deviceID uint, input *DeviceUpdate) (*models.IoTDevice, error) {
	return id.traffic.updateDevice(userID, deviceID, input)
}

func (id *IDeviceImpl) DeleteDevice(userID, deviceID uint) error {
	return id.traffic.deleteDevice(userID, deviceID)
}

func (t *Traffic) GetIDevice() IDevice {
	return &IDeviceImpl{traffic: t}
}
