package traffic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	_ "rayhank.xyz/traffic-iot-service/pkg/testing"
)

func TestLatestValue(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)
	device := createTestDevice(t, tr, user.ID)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// inserted out of timestamp order on purpose
	insertValueAt(t, tr, user.ID, device.ID, base.Add(time.Minute), 2)
	newest := insertValueAt(t, tr, user.ID, device.ID, base.Add(2*time.Minute), 3)
	insertValueAt(t, tr, user.ID, device.ID, base, 1)

	latest, err := tr.Latest.LatestValue(device.ID, &user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newest.ID, latest.ID)
}

func TestLatestValueAbsent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)
	device := createTestDevice(t, tr, user.ID)

	latest, err := tr.Latest.LatestValue(device.ID, &user.ID)
	require.NoError(t, err, "a device without values is not an error")
	assert.Nil(t, latest)
}

func TestLatestValueTieBreak(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user := createTestUser(t, tr)
	device := createTestDevice(t, tr, user.ID)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insertValueAt(t, tr, user.ID, device.ID, at, 1)
	later := insertValueAt(t, tr, user.ID, device.ID, at, 2)

	latest, err := tr.Latest.LatestValue(device.ID, &user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, later.ID, latest.ID, "identical timestamps resolve to the higher insertion id")
}

func TestLatestValueRequesterScoping(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, tr, _, _, _ := GetMockTrafficWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	owner := createTestUser(t, tr)
	stranger := createTestUser(t, tr)
	device := createTestDevice(t, tr, owner.ID)

	value, err := tr.Value.CreateValue(owner.ID, device.ID, &models.DeviceValue{Value: 4})
	require.NoError(t, err)

	// nil requester: public read, no owner filter
	latest, err := tr.Latest.LatestValue(device.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, value.ID, latest.ID)

	// scoped to a non-owner: nothing qualifies
	latest, err = tr.Latest.LatestValue(device.ID, &stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}
