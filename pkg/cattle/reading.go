package cattle

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 1000
)

// readingRow is a stored reading of either sensor type.
type readingRow interface {
	models.TemperatureReading | models.ActivityReading
	Sample() health.Sample
	View() models.ReadingView
}

// readingStore runs the per-sensor queries. Both sensors share one
// implementation, store[T], selected by storeFor.
type readingStore interface {
	latest(tx *gorm.DB, cowID uint) (*models.ReadingView, error)
	lastAt(tx *gorm.DB, cowID uint) (*time.Time, error)
	history(tx *gorm.DB, cowID uint, query models.HistoryQuery) (*models.HistoryPage, error)
	stats(tx *gorm.DB, cowID uint, tr models.TimeRange) (*models.ReadingStats, error)
	samples(tx *gorm.DB, cowID uint, tr models.TimeRange) ([]health.Sample, error)
	deleteAll(tx *gorm.DB, cowID uint) (int64, error)
}

type store[T readingRow] struct{}

func storeFor(sensor models.SensorType) (readingStore, error) {
	switch sensor {
	case models.SensorTemperature:
		return store[models.TemperatureReading]{}, nil
	case models.SensorActivity:
		return store[models.ActivityReading]{}, nil
	}
	return nil, ErrUnknownSensor
}

func (store[T]) scoped(tx *gorm.DB, cowID uint, tr models.TimeRange) *gorm.DB {
	tx = tx.Model(new(T)).Where("cow_id = ?", cowID)
	if tr.From != nil {
		tx = tx.Where("created_at >= ?", tr.From.UTC())
	}
	if tr.To != nil {
		tx = tx.Where("created_at < ?", tr.To.UTC())
	}
	return tx
}

func (s store[T]) latestRow(tx *gorm.DB, cowID uint) (*T, error) {
	var row T
	err := s.scoped(tx, cowID, models.TimeRange{}).
		Order("created_at desc").
		Order("id desc").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoReadings
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s store[T]) latest(tx *gorm.DB, cowID uint) (*models.ReadingView, error) {
	row, err := s.latestRow(tx, cowID)
	if err != nil {
		return nil, err
	}
	view := (*row).View()
	return &view, nil
}

func (s store[T]) lastAt(tx *gorm.DB, cowID uint) (*time.Time, error) {
	row, err := s.latestRow(tx, cowID)
	if errors.Is(err, ErrNoReadings) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	at := (*row).Sample().At
	return &at, nil
}

func (s store[T]) history(tx *gorm.DB, cowID uint, query models.HistoryQuery) (*models.HistoryPage, error) {
	var total int64
	if err := s.scoped(tx, cowID, query.Range).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []T
	if err := s.scoped(tx, cowID, query.Range).
		Order("created_at desc").
		Order("id desc").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return &models.HistoryPage{
		Data: common.Mapper(rows, func(r T) models.ReadingView { return r.View() }),
		Pagination: models.Pagination{
			Total:   total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			HasMore: int64(query.Offset+len(rows)) < total,
		},
	}, nil
}

func (s store[T]) ascending(tx *gorm.DB, cowID uint, tr models.TimeRange) ([]T, error) {
	var rows []T
	err := s.scoped(tx, cowID, tr).Order("created_at asc").Order("id asc").Find(&rows).Error
	return rows, err
}

func (s store[T]) stats(tx *gorm.DB, cowID uint, tr models.TimeRange) (*models.ReadingStats, error) {
	rows, err := s.ascending(tx, cowID, tr)
	if err != nil {
		return nil, err
	}

	summary := health.Summarize(common.Mapper(rows, func(r T) float64 { return r.Sample().Value }))
	result := &models.ReadingStats{
		Count:   summary.Count,
		Min:     roundPtr(summary.Min),
		Max:     roundPtr(summary.Max),
		Average: roundPtr(summary.Average),
	}
	if len(rows) > 0 {
		first, last := rows[0].View(), rows[len(rows)-1].View()
		result.FirstRecord = &first
		result.LastRecord = &last
	}
	return result, nil
}

func (s store[T]) samples(tx *gorm.DB, cowID uint, tr models.TimeRange) ([]health.Sample, error) {
	rows, err := s.ascending(tx, cowID, tr)
	if err != nil {
		return nil, err
	}
	return common.Mapper(rows, func(r T) health.Sample { return r.Sample() }), nil
}

func (store[T]) deleteAll(tx *gorm.DB, cowID uint) (int64, error) {
	result := tx.Where("cow_id = ?", cowID).Delete(new(T))
	return result.RowsAffected, result.Error
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := common.Round(*v, 2)
	return &r
}

func normalizeHistoryQuery(q models.HistoryQuery) models.HistoryQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultHistoryLimit
	}
	if q.Limit > MaxHistoryLimit {
		q.Limit = MaxHistoryLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c *Cattle) conn(ctx context.Context) *gorm.DB {
	return c.Db.Conn.WithContext(ctx)
}

func readingLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameCattleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)
}

func (c *Cattle) insertTemperature(ctx context.Context, cowID uint, temperature float64) (*models.TemperatureReading, error) {
	logger := readingLogger()

	if !isFinite(temperature) {
		return nil, ErrInvalidInput
	}
	cow, err := c.findActiveCow(ctx, cowID)
	if err != nil {
		return nil, err
	}

	reading := models.TemperatureReading{
		CowID:       cowID,
		Temperature: temperature,
		CreatedAt:   c.now(),
	}

	logger.Info("Received temperature reading", zap.Reflect("reading", reading))

	if err := c.conn(ctx).Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored temperature reading", zap.Uint("id", reading.ID), zap.Uint("cow_id", cowID))

	if c.Notification == nil {
		return &reading, ErrNotifierUnavailable
	}
	if err := c.Notification.NotifyTemperature(ctx, cow, &reading); err != nil {
		logger.Warn("Failed to raise temperature notification", zap.Uint("cow_id", cowID), zap.Error(err))
	}
	return &reading, nil
}

func (c *Cattle) insertActivity(ctx context.Context, cowID uint, x, y, z float64) (*models.ActivityReading, error) {
	logger := readingLogger()

	if !isFinite(x, y, z) {
		return nil, ErrInvalidInput
	}
	cow, err := c.findActiveCow(ctx, cowID)
	if err != nil {
		return nil, err
	}

	reading := models.ActivityReading{
		CowID:     cowID,
		AccelX:    x,
		AccelY:    y,
		AccelZ:    z,
		Category:  string(c.postures().Classify(x, y, z)),
		CreatedAt: c.now(),
	}

	logger.Info("Received activity reading", zap.Reflect("reading", reading))

	if err := c.conn(ctx).Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Stored activity reading", zap.Uint("id", reading.ID), zap.Uint("cow_id", cowID))

	if c.Notification == nil {
		return &reading, ErrNotifierUnavailable
	}
	if err := c.Notification.NotifyActivity(ctx, cow, &reading); err != nil {
		logger.Warn("Failed to raise activity notification", zap.Uint("cow_id", cowID), zap.Error(err))
	}
	return &reading, nil
}

func (c *Cattle) latest(ctx context.Context, sensor models.SensorType, cowID uint) (*models.ReadingView, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return nil, err
	}
	return s.latest(c.conn(ctx), cowID)
}

func (c *Cattle) history(ctx context.Context, sensor models.SensorType, cowID uint, query models.HistoryQuery) (*models.HistoryPage, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return nil, err
	}
	return s.history(c.conn(ctx), cowID, normalizeHistoryQuery(query))
}

func (c *Cattle) stats(ctx context.Context, sensor models.SensorType, cowID uint, tr models.TimeRange) (*models.ReadingStats, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return nil, err
	}
	return s.stats(c.conn(ctx), cowID, tr)
}

func (c *Cattle) status(ctx context.Context, sensor models.SensorType, cowID uint) (*health.SensorStatus, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return nil, err
	}
	last, err := s.lastAt(c.conn(ctx), cowID)
	if err != nil {
		return nil, err
	}
	status := health.DeriveStatus(c.now(), last, c.staleAfter(sensor))
	return &status, nil
}

func (c *Cattle) series(ctx context.Context, sensor models.SensorType, cowID uint, g health.Granularity, tr models.TimeRange) ([]health.Bucket, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return nil, err
	}
	samples, err := s.samples(c.conn(ctx), cowID, tr)
	if err != nil {
		return nil, err
	}
	return health.BucketByInterval(samples, g), nil
}

func (c *Cattle) distribution(ctx context.Context, cowID uint, tr models.TimeRange) ([]health.LabelCount, error) {
	var temperatures []float64
	err := store[models.TemperatureReading]{}.
		scoped(c.conn(ctx), cowID, tr).
		Pluck("temperature", &temperatures).Error
	if err != nil {
		return nil, err
	}
	return health.Distribution(temperatures), nil
}

func (c *Cattle) deleteReadings(ctx context.Context, sensor models.SensorType, cowID uint) (int64, error) {
	s, err := storeFor(sensor)
	if err != nil {
		return 0, err
	}
	deleted, err := s.deleteAll(c.conn(ctx), cowID)
	if err != nil {
		return 0, err
	}

	readingLogger().Info("Deleted readings",
		zap.String("sensor", string(sensor)),
		zap.Uint("cow_id", cowID),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

type IReadingImpl struct {
	cattle *Cattle
}

func (ir *IReadingImpl) InsertTemperature(ctx context.Context, cowID uint, temperature float64) (*models.TemperatureReading, error) {
	return ir.cattle.insertTemperature(ctx, cowID, temperature)
}

func (ir *IReadingImpl) InsertActivity(ctx context.Context, cowID uint, x, y, z float64) (*models.ActivityReading, error) {
	return ir.cattle.insertActivity(ctx, cowID, x, y, z)
}

func (ir *IReadingImpl) Latest(ctx context.Context, sensor models.SensorType, cowID uint) (*models.ReadingView, error) {
	return ir.cattle.latest(ctx, sensor, cowID)
}

func (ir *IReadingImpl) History(ctx context.Context, sensor models.SensorType, cowID uint, query models.HistoryQuery) (*models.HistoryPage, error) {
	return ir.cattle.history(ctx, sensor, cowID, query)
}

func (ir *IReadingImpl) Stats(ctx context.Context, sensor models.SensorType, cowID uint, tr models.TimeRange) (*models.ReadingStats, error) {
	return ir.cattle.stats(ctx, sensor, cowID, tr)
}

func (ir *IReadingImpl) Status(ctx context.Context, sensor models.SensorType, cowID uint) (*health.SensorStatus, error) {
	return ir.cattle.status(ctx, sensor, cowID)
}

func (ir *IReadingImpl) Series(ctx context.Context, sensor models.SensorType, cowID uint, g health.Granularity, tr models.TimeRange) ([]health.Bucket, error) {
	return ir.cattle.series(ctx, sensor, cowID, g, tr)
}

func (ir *IReadingImpl) Distribution(ctx context.Context, cowID uint, tr models.TimeRange) ([]health.LabelCount, error) {
	return ir.cattle.distribution(ctx, cowID, tr)
}

func (ir *IReadingImpl) DeleteReadings(ctx context.Context, sensor models.SensorType, cowID uint) (int64, error) {
	return ir.cattle.deleteReadings(ctx, sensor, cowID)
}

func (c *Cattle) GetIReading() IReading {
	return &IReadingImpl{cattle: c}
}
