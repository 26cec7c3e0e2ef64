package cattle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

func notifyLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCattleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNotify),
	)
}

func (c *Cattle) storeNotification(ctx context.Context, n *models.Notification) error {
	logger := notifyLogger()

	n.CreatedAt = c.now()
	logger.Info("Notification found", zap.Reflect("notification", n))

	if err := c.conn(ctx).Omit(clause.Associations).Create(n).Error; err != nil {
		return err
	}

	metrics.NotificationsCreated.WithLabelValues(string(n.Type), string(n.Severity)).Inc()
	logger.Info("Notification saved", zap.Uint("id", n.ID), zap.Uint("cow_id", n.CowID))
	return nil
}

// previousRow returns the reading stored right before the given one, or nil.
func previousRow[T models.TemperatureReading | models.ActivityReading](tx *gorm.DB, cowID, beforeID uint) (*T, error) {
	var row T
	err := tx.Where("cow_id = ? AND id < ?", cowID, beforeID).Order("id desc").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// notifyTemperature raises a notification only when the reading enters an
// abnormal label, so a fever episode produces one entry and not one per sample.
func (c *Cattle) notifyTemperature(ctx context.Context, cow *models.Cow, reading *models.TemperatureReading) error {
	label := health.ClassifyTemperature(reading.Temperature).Label
	if !label.IsAbnormal() {
		return nil
	}

	prev, err := previousRow[models.TemperatureReading](c.conn(ctx), cow.ID, reading.ID)
	if err != nil {
		return err
	}
	if prev != nil && health.ClassifyTemperature(prev.Temperature).Label == label {
		return nil
	}

	severity := models.SeverityWarning
	if label.IsCritical() {
		severity = models.SeverityCritical
	}

	return c.storeNotification(ctx, &models.Notification{
		UserID:   cow.OwnerID,
		CowID:    cow.ID,
		Type:     models.NotificationTypeTemperature,
		Sensor:   models.SensorTemperature,
		Severity: severity,
		Message:  fmt.Sprintf("%s: temperature %.1f°C classified as %s", cow.Tag, reading.Temperature, label),
	})
}

func (c *Cattle) notifyActivity(ctx context.Context, cow *models.Cow, reading *models.ActivityReading) error {
	posture := health.Posture(reading.Category)
	if !posture.IsAbnormal() {
		return nil
	}

	prev, err := previousRow[models.ActivityReading](c.conn(ctx), cow.ID, reading.ID)
	if err != nil {
		return err
	}
	if prev != nil && health.Posture(prev.Category).IsAbnormal() {
		return nil
	}

	return c.storeNotification(ctx, &models.Notification{
		UserID:   cow.OwnerID,
		CowID:    cow.ID,
		Type:     models.NotificationTypeActivity,
		Sensor:   models.SensorActivity,
		Severity: models.SeverityWarning,
		Message: fmt.Sprintf("%s: abnormal posture (x=%.2f, y=%.2f, z=%.2f)",
			cow.Tag, reading.AccelX, reading.AccelY, reading.AccelZ),
	})
}

func (c *Cattle) notifyCheckup(ctx context.Context, cow *models.Cow) error {
	date := c.now()
	if cow.CheckupDate != nil {
		date = time.Time(*cow.CheckupDate)
	}
	return c.storeNotification(ctx, &models.Notification{
		UserID:   cow.OwnerID,
		CowID:    cow.ID,
		Type:     models.NotificationTypeCheckup,
		Severity: models.SeverityInfo,
		Message:  fmt.Sprintf("%s: checkup recorded on %s", cow.Tag, date.Format(time.DateOnly)),
	})
}

// sweepOfflineSensors raises one sensor_offline notification per silent
// sensor per silence: nothing is raised again until a newer reading arrives.
// Sensors that never reported are skipped.
func (c *Cattle) sweepOfflineSensors(ctx context.Context) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameCattleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryOfflineJob),
	)

	var cows []models.Cow
	if err := c.conn(ctx).Where("is_deleted = ?", false).Order("id asc").Find(&cows).Error; err != nil {
		return 0, err
	}

	now := c.now()
	created := 0
	var errs error
	for i := range cows {
		cow := &cows[i]
		for _, sensor := range models.SensorTypes {
			raised, err := c.checkOffline(ctx, cow, sensor, now)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("cow %d %s: %w", cow.ID, sensor, err))
				continue
			}
			if raised {
				created++
			}
		}
	}

	logger.Info("Offline sweep finished",
		zap.Int("cows", len(cows)),
		zap.Int("created", created),
		zap.Error(errs),
	)
	return created, errs
}

func (c *Cattle) checkOffline(ctx context.Context, cow *models.Cow, sensor models.SensorType, now time.Time) (bool, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return false, err
	}
	last, err := s.lastAt(c.conn(ctx), cow.ID)
	if err != nil || last == nil {
		return false, err
	}

	status := health.DeriveStatus(now, last, c.staleAfter(sensor))
	if status.Status == health.StateOnline {
		return false, nil
	}

	var count int64
	if err := c.conn(ctx).Model(&models.Notification{}).
		Where("cow_id = ? AND type = ? AND sensor = ? AND created_at >= ?",
			cow.ID, models.NotificationTypeSensorOffline, sensor, last.UTC()).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err = c.storeNotification(ctx, &models.Notification{
		UserID:   cow.OwnerID,
		CowID:    cow.ID,
		Type:     models.NotificationTypeSensorOffline,
		Sensor:   sensor,
		Severity: models.SeverityWarning,
		Message:  fmt.Sprintf("%s: %s sensor offline since %s", cow.Tag, sensor, last.UTC().Format(time.RFC3339)),
	})
	return err == nil, err
}

func (c *Cattle) listNotifications(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error) {
	q := c.conn(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	notifications := []models.Notification{}
	err := q.Order("created_at desc").Order("id desc").Find(&notifications).Error
	return notifications, err
}

func (c *Cattle) unreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := c.conn(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (c *Cattle) markRead(ctx context.Context, userID, notificationID uint) error {
	return c.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var n models.Notification
		err := tx.Where("id = ? AND user_id = ?", notificationID, userID).Take(&n).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		if err != nil {
			return err
		}
		return tx.Model(&n).Update("is_read", true).Error
	})
}

func (c *Cattle) markAllRead(ctx context.Context, userID uint) (int64, error) {
	result := c.conn(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (c *Cattle) deleteNotification(ctx context.Context, userID, notificationID uint) error {
	result := c.conn(ctx).Where("id = ? AND user_id = ?", notificationID, userID).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

type INotificationImpl struct {
	cattle *Cattle
}

func (in *INotificationImpl) NotifyTemperature(ctx context.Context, cow *models.Cow, reading *models.TemperatureReading) error {
	return in.cattle.notifyTemperature(ctx, cow, reading)
}

func (in *INotificationImpl) NotifyActivity(ctx context.Context, cow *models.Cow, reading *models.ActivityReading) error {
	return in.cattle.notifyActivity(ctx, cow, reading)
}

func (in *INotificationImpl) NotifyCheckup(ctx context.Context, cow *models.Cow) error {
	return in.cattle.notifyCheckup(ctx, cow)
}

func (in *INotificationImpl) SweepOfflineSensors(ctx context.Context) (int, error) {
	return in.cattle.sweepOfflineSensors(ctx)
}

func (in *INotificationImpl) ListNotifications(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error) {
	return in.cattle.listNotifications(ctx, userID, unreadOnly)
}

func (in *INotificationImpl) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return in.cattle.unreadCount(ctx, userID)
}

func (in *INotificationImpl) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return in.cattle.markRead(ctx, userID, notificationID)
}

func (in *INotificationImpl) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return in.cattle.markAllRead(ctx, userID)
}

func (in *INotificationImpl) DeleteNotification(ctx context.Context, userID, notificationID uint) error {
	return in.cattle.deleteNotification(ctx, userID, notificationID)
}

func (c *Cattle) GetINotification() INotification {
	return &INotificationImpl{cattle: c}
}
