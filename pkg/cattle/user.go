package cattle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/cattle-health-service/pkg/auth"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Cattle) register(ctx context.Context, name, email, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCattleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user := models.User{Name: name, Email: email, Password: hashed}
	err = c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return insertUser(tx, &user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Registered user", zap.Uint("id", user.ID), zap.String("email", user.Email))
	return &user, nil
}

// insertUser relies on the unique email index when a concurrent
// registration got past the count check first.
func insertUser(tx *gorm.DB, user *models.User) error {
	err := tx.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (c *Cattle) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := c.conn(ctx).Where("email = ?", normalizeEmail(email)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (c *Cattle) getUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := c.conn(ctx).Take(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type IUserImpl struct {
	cattle *Cattle
}

func (iu *IUserImpl) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return iu.cattle.register(ctx, name, email, password)
}

func (iu *IUserImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	return iu.cattle.authenticate(ctx, email, password)
}

func (iu *IUserImpl) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return iu.cattle.getUser(ctx, userID)
}

func (c *Cattle) GetIUser() IUser {
	return &IUserImpl{cattle: c}
}
