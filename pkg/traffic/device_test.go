package traffic_test

import (
	"os"
	"path/filepath"
	. "rayhank.xyz/traffic-iot-service/pkg/traffic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	_ "rayhank.xyz/traffic-iot-service/pkg/testing"
)

func TestCreateAndGetDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)

	device, err := tr.Device.CreateDevice(user.ID, &models.IoTDevice{
		DeviceName:    "ESP32",
		DevicePurpose: "Monitor Traffic",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, device.UserID)
	assert.False(t, device.CreatedAt.IsZero())

	fetched, err := tr.Device.GetDevice(user.ID, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.ID, fetched.ID)
}

func TestDeviceOwnershipIsolation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	owner := createTestUser(t, tr)
	stranger := createTestUser(t, tr)

	device := createTestDevice(t, tr, owner.ID)

	// present-but-not-owned looks exactly like absent
	_, err := tr.Device.GetDevice(stranger.ID, device.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tr.Device.UpdateDevice(stranger.ID, device.ID, &DeviceUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = tr.Device.DeleteDevice(stranger.ID, device.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the owner still sees it
	_, err = tr.Device.GetDevice(owner.ID, device.ID)
	assert.NoError(t, err)

	// and the stranger's own listing does not contain it
	listed, err := tr.Device.ListDevices(stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListDevicesWithLatest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)

	withValues := createTestDevice(t, tr, user.ID)
	empty := createTestDevice(t, tr, user.ID)

	_, err := tr.Value.CreateValue(user.ID, withValues.ID, &models.DeviceValue{Value: 2})
	require.NoError(t, err)
	second, err := tr.Value.CreateValue(user.ID, withValues.ID, &models.DeviceValue{Value: 4})
	require.NoError(t, err)

	listed, err := tr.Device.ListDevices(user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// newest device first
	assert.Equal(t, empty.ID, listed[0].Device.ID)
	assert.Nil(t, listed[0].Latest, "device without values annotates as nil, not an error")

	assert.Equal(t, withValues.ID, listed[1].Device.ID)
	require.NotNil(t, listed[1].Latest)
	assert.Equal(t, second.ID, listed[1].Latest.ID)
}

func TestUpdateDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)
	device := createTestDevice(t, tr, user.ID)

	newPurpose := "Monitor Humidity"
	updated, err := tr.Device.UpdateDevice(user.ID, device.ID, &DeviceUpdate{DevicePurpose: &newPurpose})
	require.NoError(t, err)
	assert.Equal(t, newPurpose, updated.DevicePurpose)
	assert.Equal(t, device.DeviceName, updated.DeviceName)

	var saved models.IoTDevice
	require.NoError(t, tr.Db.Conn.First(&saved, device.ID).Error)
	assert.Equal(t, newPurpose, saved.DevicePurpose)
	assert.Equal(t, user.ID, saved.UserID)
}

func TestDeleteDeviceCascades(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)
	device := createTestDevice(t, tr, user.ID)

	value, err := tr.Value.CreateValue(user.ID, device.ID, &models.DeviceValue{Value: 3})
	require.NoError(t, err)

	attached, err := tr.Value.AttachImage(user.ID, device.ID, value.ID, testPNG(t))
	require.NoError(t, err)
	imagePath := filepath.Join(tr.Blob.Root(), attached.ImagePath)
	_, err = os.Stat(imagePath)
	require.NoError(t, err)

	err = tr.Device.DeleteDevice(user.ID, device.ID)
	require.NoError(t, err)

	var valueCount int64
	err = tr.Db.Conn.Model(&models.DeviceValue{}).Where("device_id = ?", device.ID).Count(&valueCount).Error
	require.NoError(t, err)
	assert.Zero(t, valueCount, "values must cascade with their device")

	_, err = os.Stat(imagePath)
	assert.True(t, os.IsNotExist(err), "image blobs must be released with their value")

	_, err = tr.Device.GetDevice(user.ID, device.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeviceTimestampsServerAssigned(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)

	// client-supplied timestamps are not honored
	bogus := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	device, err := tr.Device.CreateDevice(user.ID, &models.IoTDevice{
		DeviceName: "ESP32",
		CreatedAt:  bogus,
		UpdatedAt:  bogus,
	})
	require.NoError(t, err)
	assert.True(t, device.CreatedAt.After(bogus))
}
