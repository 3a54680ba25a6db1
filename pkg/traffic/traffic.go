package traffic

import (
	"time"

	"rayhank.xyz/traffic-iot-service/pkg/blob"
	"rayhank.xyz/traffic-iot-service/pkg/db"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

type IAccount interface {
	CreateUser(email, password, name string) (*models.User, error)
	IssueToken(email, password string) (string, error)
	VerifyToken(token string) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
	UpdateUser(userID uint, input *AccountUpdate) (*models.User, error)
}

type IDevice interface {
	CreateDevice(userID uint, input *models.IoTDevice) (*models.IoTDevice, error)
	ListDevices(userID uint) ([]DeviceWithLatest, error)
	GetDevice(userID, deviceID uint) (*models.IoTDevice, error)
	UpdateDevice(userID, deviceID uint, input *DeviceUpdate) (*models.IoTDevice, error)
	DeleteDevice(userID, deviceID uint) error
}

type IValue interface {
	CreateValue(userID, deviceID uint, input *models.DeviceValue) (*models.DeviceValue, error)
	ListValues(userID, deviceID uint, orderDirection string, page int) (*ValuePage, error)
	GetValue(userID, deviceID, valueID uint) (*models.DeviceValue, error)
	UpdateValue(userID, deviceID, valueID uint, input *ValueUpdate) (*models.DeviceValue, error)
	DeleteValue(userID, deviceID, valueID uint) error
	AttachImage(userID, deviceID, valueID uint, data []byte) (*models.DeviceValue, error)
}

type ILatest interface {
	LatestValue(deviceID uint, requesterID *uint) (*models.DeviceValue, error)
}

type ITodo interface {
	CreateTodo(userID uint, input *models.TodoItem) (*models.TodoItem, error)
	ListTodos(userID uint) ([]models.TodoItem, error)
	GetTodo(userID, todoID uint) (*models.TodoItem, error)
	UpdateTodo(userID, todoID uint, input *TodoUpdate) (*models.TodoItem, error)
	DeleteTodo(userID, todoID uint) error
}

type Traffic struct {
	Db          db.DB
	Blob        blob.Store
	TokenSecret string
	TokenTTL    time.Duration

	Account IAccount
	Device  IDevice
	Value   IValue
	Latest  ILatest
	Todo    ITodo
}

type ServiceOpts struct {
	Account IAccount
	Device  IDevice
	Value   IValue
	Latest  ILatest
	Todo    ITodo
}

func (t *Traffic) WithServices(opts ServiceOpts) *Traffic {
	if opts.Account != nil {
		t.Account = opts.Account
	}
	if opts.Device != nil {
		t.Device = opts.Device
	}
	if opts.Value != nil {
		t.Value = opts.Value
	}
	if opts.Latest != nil {
		t.Latest = opts.Latest
	}
	if opts.Todo != nil {
		t.Todo = opts.Todo
	}
	return t
}
