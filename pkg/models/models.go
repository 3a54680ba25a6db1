package models

import "time"

// User is an identity that owns devices, values and todo items.
// Email is the login name, stored normalized (trimmed, lowercased).
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Name     string `json:"name" gorm:"size:255"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	IsStaff  bool   `json:"is_staff" gorm:"default:false"`

	Devices []IoTDevice `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Todos   []TodoItem  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IoTDevice is owned by exactly one user; ownership is write-once.
type IoTDevice struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"-" gorm:"index;not null"`
	DeviceName    string    `json:"device_name" gorm:"size:255"`
	DevicePurpose string    `json:"device_purpose"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Values []DeviceValue `json:"-" gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// DeviceValue is one measurement in a device's time series. UserID duplicates
// the parent device's owner so that value queries can be owner-scoped without
// a join. TakenAt is server-assigned at write time; ties sort by ID.
type DeviceValue struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"-" gorm:"index;not null"`
	DeviceID uint `json:"device" gorm:"index;not null"`

	Value int `json:"value" gorm:"default:0"` // traffic severity, documented range 1-5

	CarCount        int `json:"car_count" gorm:"default:0"`
	MotorcycleCount int `json:"motorcycle_count" gorm:"default:0"`
	SmalltruckCount int `json:"smalltruck_count" gorm:"default:0"`
	BigvehicleCount int `json:"bigvehicle_count" gorm:"default:0"`

	TakenAt time.Time `json:"taken_at" gorm:"index"`

	ImagePath string `json:"image,omitempty"`
}

// TodoItem is a user-owned todo entry.
type TodoItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
}
