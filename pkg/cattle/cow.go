package cattle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

const TagPrefix = "SAPI-"

func FormatTag(n int) string {
	return fmt.Sprintf("%s%03d", TagPrefix, n)
}

// ParseTagNumber returns n for tags of the form SAPI-n.
func ParseTagNumber(tag string) (int, bool) {
	rest, ok := strings.CutPrefix(tag, TagPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// CowIDFromNumber accepts a cow_id sent as a JSON number. Only whole
// numbers of at least 1 name a cow.
func CowIDFromNumber(n float64) (uint, error) {
	if n < 1 || n != math.Trunc(n) || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: cow_id must be a positive integer, got %v", ErrInvalidInput, n)
	}
	return uint(n), nil
}

func cowLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCattleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCow),
	)
}

func activeCows(tx *gorm.DB, ownerID uint) *gorm.DB {
	return tx.Model(&models.Cow{}).Where("owner_id = ? AND is_deleted = ?", ownerID, false)
}

// nextFreeTag picks the lowest SAPI number not used by the owner's active cows.
func nextFreeTag(tx *gorm.DB, ownerID uint) (string, error) {
	var tags []string
	if err := activeCows(tx, ownerID).Pluck("tag", &tags).Error; err != nil {
		return "", err
	}

	used := make(map[int]bool, len(tags))
	for _, tag := range tags {
		if n, ok := ParseTagNumber(tag); ok {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return FormatTag(n), nil
}

func ensureTagFree(tx *gorm.DB, ownerID uint, tag string, exceptCowID uint) error {
	var count int64
	q := activeCows(tx, ownerID).Where("tag = ?", tag)
	if exceptCowID != 0 {
		q = q.Where("id <> ?", exceptCowID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrTagTaken
	}
	return nil
}

func takeCow(tx *gorm.DB, query string, args ...any) (*models.Cow, error) {
	var cow models.Cow
	err := tx.Where(query, args...).Take(&cow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCowNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cow, nil
}

func (c *Cattle) createCow(ctx context.Context, ownerID uint, input models.CowInput) (*models.Cow, error) {
	logger := cowLogger()

	c.tagMu.Lock()
	defer c.tagMu.Unlock()

	var cow models.Cow
	err := c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		tag := strings.TrimSpace(input.Tag)
		if tag == "" {
			next, err := nextFreeTag(tx, ownerID)
			if err != nil {
				return err
			}
			tag = next
		} else if err := ensureTagFree(tx, ownerID, tag, 0); err != nil {
			return err
		}

		cow = models.Cow{
			OwnerID:       ownerID,
			Tag:           tag,
			Age:           strings.TrimSpace(input.Age),
			CheckupStatus: models.CheckupPending,
		}
		return tx.Omit(clause.Associations).Create(&cow).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Created cow", zap.Uint("id", cow.ID), zap.String("tag", cow.Tag), zap.Uint("owner_id", ownerID))
	return &cow, nil
}

func (c *Cattle) listCows(ctx context.Context, ownerID uint) ([]models.Cow, error) {
	cows := []models.Cow{}
	err := activeCows(c.conn(ctx), ownerID).Order("id asc").Find(&cows).Error
	return cows, err
}

func (c *Cattle) listDeletedCows(ctx context.Context, ownerID uint) ([]models.Cow, error) {
	cows := []models.Cow{}
	err := c.conn(ctx).
		Where("owner_id = ? AND is_deleted = ?", ownerID, true).
		Order("deleted_at desc").
		Order("id desc").
		Find(&cows).Error
	return cows, err
}

func (c *Cattle) getCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error) {
	return takeCow(c.conn(ctx), "id = ? AND owner_id = ?", cowID, ownerID)
}

func (c *Cattle) findActiveCow(ctx context.Context, cowID uint) (*models.Cow, error) {
	return takeCow(c.conn(ctx), "id = ? AND is_deleted = ?", cowID, false)
}

func (c *Cattle) updateCow(ctx context.Context, ownerID, cowID uint, input models.CowInput) (*models.Cow, error) {
	c.tagMu.Lock()
	defer c.tagMu.Unlock()

	var cow *models.Cow
	err := c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := takeCow(tx, "id = ? AND owner_id = ? AND is_deleted = ?", cowID, ownerID, false)
		if err != nil {
			return err
		}

		if tag := strings.TrimSpace(input.Tag); tag != "" && tag != found.Tag {
			if err := ensureTagFree(tx, ownerID, tag, cowID); err != nil {
				return err
			}
			found.Tag = tag
		}
		if age := strings.TrimSpace(input.Age); age != "" {
			found.Age = age
		}

		cow = found
		return tx.Omit(clause.Associations).Save(found).Error
	})
	if err != nil {
		return nil, err
	}

	cowLogger().Info("Updated cow", zap.Uint("id", cow.ID), zap.String("tag", cow.Tag))
	return cow, nil
}

func (c *Cattle) updateCheckup(ctx context.Context, ownerID, cowID uint, input models.CheckupInput) (*models.Cow, error) {
	logger := cowLogger()

	if input.Status != models.CheckupPending && input.Status != models.CheckupDone {
		return nil, fmt.Errorf("%w: checkup status %q", ErrInvalidInput, input.Status)
	}

	cow, err := takeCow(c.conn(ctx), "id = ? AND owner_id = ? AND is_deleted = ?", cowID, ownerID, false)
	if err != nil {
		return nil, err
	}

	cow.CheckupStatus = input.Status
	switch {
	case input.Status == models.CheckupPending:
		cow.CheckupDate = nil
	case input.Date != nil:
		date := datatypes.Date(*input.Date)
		cow.CheckupDate = &date
	default:
		now := c.now()
		date := datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
		cow.CheckupDate = &date
	}

	if err := c.conn(ctx).Omit(clause.Associations).Save(cow).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated checkup", zap.Uint("id", cow.ID), zap.String("status", string(cow.CheckupStatus)))

	if cow.CheckupStatus == models.CheckupDone && c.Notification != nil {
		if err := c.Notification.NotifyCheckup(ctx, cow); err != nil {
			logger.Warn("Failed to raise checkup notification", zap.Uint("id", cow.ID), zap.Error(err))
		}
	}
	return cow, nil
}

// softDeleteCow flags the cow; its readings are kept for a later restore.
func (c *Cattle) softDeleteCow(ctx context.Context, ownerID, cowID uint) error {
	result := c.conn(ctx).
		Model(&models.Cow{}).
		Where("id = ? AND owner_id = ? AND is_deleted = ?", cowID, ownerID, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": c.now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCowNotFound
	}

	cowLogger().Info("Soft deleted cow", zap.Uint("id", cowID), zap.Uint("owner_id", ownerID))
	return nil
}

// restoreCow clears the deleted flag and hands the cow the lowest free tag,
// since its old tag may have been taken while it was deleted.
func (c *Cattle) restoreCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error) {
	c.tagMu.Lock()
	defer c.tagMu.Unlock()

	var cow *models.Cow
	err := c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := takeCow(tx, "id = ? AND owner_id = ?", cowID, ownerID)
		if err != nil {
			return err
		}
		if !found.IsDeleted {
			return ErrCowNotDeleted
		}

		tag, err := nextFreeTag(tx, ownerID)
		if err != nil {
			return err
		}

		found.Tag = tag
		found.IsDeleted = false
		found.DeletedAt = nil
		cow = found
		return tx.Omit(clause.Associations).Save(found).Error
	})
	if err != nil {
		return nil, err
	}

	cowLogger().Info("Restored cow", zap.Uint("id", cow.ID), zap.String("tag", cow.Tag))
	return cow, nil
}

// purgeCow removes the cow with its readings and notifications.
func (c *Cattle) purgeCow(ctx context.Context, ownerID, cowID uint) error {
	err := c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := takeCow(tx, "id = ? AND owner_id = ?", cowID, ownerID); err != nil {
			return err
		}
		for _, m := range []any{&models.TemperatureReading{}, &models.ActivityReading{}, &models.Notification{}} {
			if err := tx.Where("cow_id = ?", cowID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Cow{}, cowID).Error
	})
	if err != nil {
		return err
	}

	cowLogger().Info("Purged cow", zap.Uint("id", cowID), zap.Uint("owner_id", ownerID))
	return nil
}

type ICowImpl struct {
	cattle *Cattle
}

func (ic *ICowImpl) CreateCow(ctx context.Context, ownerID uint, input models.CowInput) (*models.Cow, error) {
	return ic.cattle.createCow(ctx, ownerID, input)
}

func (ic *ICowImpl) ListCows(ctx context.Context, ownerID uint) ([]models.Cow, error) {
	return ic.cattle.listCows(ctx, ownerID)
}

func (ic *ICowImpl) ListDeletedCows(ctx context.Context, ownerID uint) ([]models.Cow, error) {
	return ic.cattle.listDeletedCows(ctx, ownerID)
}

func (ic *ICowImpl) GetCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error) {
	return ic.cattle.getCow(ctx, ownerID, cowID)
}

func (ic *ICowImpl) FindActiveCow(ctx context.Context, cowID uint) (*models.Cow, error) {
	return ic.cattle.findActiveCow(ctx, cowID)
}

func (ic *ICowImpl) UpdateCow(ctx context.Context, ownerID, cowID uint, input models.CowInput) (*models.Cow, error) {
	return ic.cattle.updateCow(ctx, ownerID, cowID, input)
}

func (ic *ICowImpl) UpdateCheckup(ctx context.Context, ownerID, cowID uint, input models.CheckupInput) (*models.Cow, error) {
	return ic.cattle.updateCheckup(ctx, ownerID, cowID, input)
}

func (ic *ICowImpl) SoftDeleteCow(ctx context.Context, ownerID, cowID uint) error {
	return ic.cattle.softDeleteCow(ctx, ownerID, cowID)
}

func (ic *ICowImpl) RestoreCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error) {
	return ic.cattle.restoreCow(ctx, ownerID, cowID)
}

func (ic *ICowImpl) PurgeCow(ctx context.Context, ownerID, cowID uint) error {
	return ic.cattle.purgeCow(ctx, ownerID, cowID)
}

func (c *Cattle) GetICow() ICow {
	return &ICowImpl{cattle: c}
}
