package traffic

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

// AccountUpdate lists the fields a user may change on their own record.
// Email is write-once.
type AccountUpdate struct {
	Name     *string
	Password *string
}

func (t *Traffic) createUser(email, password, name string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTrafficCore,
		zap.String(common.LoggerFieldTrafficCategory, common.LoggerCategoryAccount),
	)

	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	var count int64
	if err := t.Db.Conn.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		IsActive: true,
	}

	if err := t.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Created user", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return &user, nil
}

func (t *Traffic) issueToken(email, password string) (string, error) {
	email = common.NormalizeEmail(email)

	var user models.User
	err := t.Db.Conn.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *Traffic) verifyToken(tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(t.TokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	err = t.Db.Conn.Where("id = ? AND is_active = ?", uint(userID), true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *Traffic) getUser(userID uint) (*models.User, error) {
	var user models.User
	err := t.Db.Conn.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *Traffic) updateUser(userID uint, input *AccountUpdate) (*models.User, error) {
	user, err := t.getUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := t.Db.Conn.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

type IAccountImpl struct {
	traffic *Traffic
}

func (ia *IAccountImpl) CreateUser(email, password, name string) (*models.User, error) {
	return ia.traffic.createUser(email, password, name)
}

func (ia *IAccountImpl) IssueToken(email, password string) (string, error) {
	return ia.traffic.issueToken(email, password)
}

func (ia *IAccountImpl) VerifyToken(token string) (*models.User, error) {
	return ia.traffic.verifyToken(token)
}

func (ia *IAccountImpl) GetUser(userID uint) (*models.User, error) {
	return ia.traffic.getUser(userID)
}

func (ia *IAccountImpl) UpdateUser(userID uint, input *AccountUpdate) (*models.User, error) {
	return ia.traffic.updateUser(userID, input)
}

func (t *Traffic) GetIAccount() IAccount {
	return &IAccountImpl{traffic: t}
}
