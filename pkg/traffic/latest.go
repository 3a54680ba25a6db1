package traffic

import (
	"errors"

	"gorm.io/gorm"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

// latestValue resolves the most recent value for a device: maximum taken_at,
// ties broken by the higher insertion id. A nil requesterID skips owner
// scoping for the public read path; a non-nil one restricts the selection to
// that identity's values. No qualifying value returns (nil, nil), not an
// error.
func (t *Traffic) latestValue(deviceID uint, requesterID *uint) (*models.DeviceValue, error) {
	query := t.Db.Conn.Where("device_id = ?", deviceID)
	if requesterID != nil {
		query = query.Where("user_id = ?", *requesterID)
	}

	var value models.DeviceValue
	err := query.
		Order("taken_at desc, id desc").
		First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

type ILatestImpl struct {
	traffic *Traffic
}

func (il *ILatestImpl) LatestValue(deviceID uint, requesterID *uint) (*models.DeviceValue, error) {
	return il.traffic.latestValue(deviceID, requesterID)
}

func (t *Traffic) GetILatest() ILatest {
	return &ILatestImpl{traffic: t}
}
