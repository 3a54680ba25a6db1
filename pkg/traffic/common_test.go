package traffic_test

import (
	. "rayhank.xyz/traffic-iot-service/pkg/traffic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"rayhank.xyz/traffic-iot-service/pkg/blob"
	"rayhank.xyz/traffic-iot-service/pkg/db"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	"rayhank.xyz/traffic-iot-service/pkg/traffic/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func GetMockTrafficWithMemorySqliteDialector(t *testing.T, useMockDevice, useMockValue, useMockLatest bool) (
	*gomock.Controller,
	*Traffic,
	*mocks.MockIDevice,
	*mocks.MockIValue,
	*mocks.MockILatest,
) {
	ctrl := gomock.NewController(t)

	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockIValue := mocks.NewMockIValue(ctrl)
	mockILatest := mocks.NewMockILatest(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	blobStore, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	trafficInstance := &Traffic{
		Db:          *dbInstance,
		Blob:        blobStore,
		TokenSecret: "test-secret",
		TokenTTL:    24 * time.Hour,
	}

	deviceService := trafficInstance.GetIDevice()
	if useMockDevice {
		deviceService = mockIDevice
	}

	valueService := trafficInstance.GetIValue()
	if useMockValue {
		valueService = mockIValue
	}

	latestService := trafficInstance.GetILatest()
	if useMockLatest {
		latestService = mockILatest
	}

	trafficInstance.WithServices(ServiceOpts{
		Account: trafficInstance.GetIAccount(),
		Device:  deviceService,
		Value:   valueService,
		Latest:  latestService,
		Todo:    trafficInstance.GetITodo(),
	})

	return ctrl, trafficInstance, mockIDevice, mockIValue, mockILatest
}

// createTestUser registers a user with a unique email so tests sharing the
// memory sqlite singleton stay isolated through ownership scoping.
func createTestUser(t *testing.T, tr *Traffic) *models.User {
	user, err := tr.Account.CreateUser(uuid.NewString()+"@rayhank.com", "changeme", "Test User")
	require.NoError(t, err)
	return user
}

func createTestDevice(t *testing.T, tr *Traffic, userID uint) *models.IoTDevice {
	device, err := tr.Device.CreateDevice(userID, &models.IoTDevice{
		DeviceName:    "ESP32",
		DevicePurpose: "Monitor Traffic",
	})
	require.NoError(t, err)
	return device
}
