package cattle

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
	_ "liyu1981.xyz/cattle-health-service/pkg/testing"
)

func TestInsertTemperatureThenLatest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	reading, err := c.Reading.InsertTemperature(ctx, cow.ID, 38.2)
	require.NoError(t, err)
	assert.NotZero(t, reading.ID)

	latest, err := c.Reading.Latest(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, reading.ID, latest.ID)
	require.NotNil(t, latest.Temperature)
	assert.Equal(t, 38.2, *latest.Temperature)
	assert.Equal(t, string(health.LabelNormal), latest.Label)
	assert.Nil(t, latest.Magnitude)
}

func TestLatestWithoutReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	_, err := c.Reading.Latest(context.Background(), models.SensorActivity, cow.ID)
	assert.ErrorIs(t, err, ErrNoReadings)

	_, err = c.Reading.Latest(context.Background(), models.SensorType("humidity"), cow.ID)
	assert.ErrorIs(t, err, ErrUnknownSensor)
}

func TestInsertReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	{
		_, err := c.Reading.InsertTemperature(ctx, 9999, 38.0)
		assert.ErrorIs(t, err, ErrCowNotFound)
	}

	{
		_, err := c.Reading.InsertTemperature(ctx, cow.ID, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = c.Reading.InsertActivity(ctx, cow.ID, 0, math.Inf(1), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	{
		require.NoError(t, c.Cow.SoftDeleteCow(ctx, user.ID, cow.ID))
		_, err := c.Reading.InsertActivity(ctx, cow.ID, 0, 0, 0)
		assert.ErrorIs(t, err, ErrCowNotFound, "soft deleted cows do not accept readings")
	}
}

func TestInsertNotifiesThroughService(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, m := GetMockCattleWithMemorySqliteDialector(t, useMocks{Notification: true})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	m.Notification.EXPECT().
		NotifyTemperature(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.Cow, r *models.TemperatureReading) error {
			assert.Equal(t, cow.ID, got.ID)
			assert.Equal(t, 41.0, r.Temperature)
			return errors.New("notification store down")
		})

	reading, err := c.Reading.InsertTemperature(ctx, cow.ID, 41.0)
	require.NoError(t, err, "notification failures do not fail ingestion")
	assert.NotZero(t, reading.ID)
}

func TestInsertWithoutNotifier(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)
	c.Notification = nil

	reading, err := c.Reading.InsertTemperature(ctx, cow.ID, 38.5)
	assert.ErrorIs(t, err, ErrNotifierUnavailable)
	require.NotNil(t, reading, "the reading is stored before notifying")

	var count int64
	require.NoError(t, c.Db.Conn.Model(&models.TemperatureReading{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHistoryPagination(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)
	other := seedCow(t, c, user.ID)

	var lastID uint
	for i := range 120 {
		r, err := c.Reading.InsertTemperature(ctx, cow.ID, 38.0+float64(i%10)*0.1)
		require.NoError(t, err)
		lastID = r.ID
		clock.Advance(time.Second)
	}
	_, err := c.Reading.InsertTemperature(ctx, other.ID, 38.0)
	require.NoError(t, err)

	page, err := c.Reading.History(ctx, models.SensorTemperature, cow.ID, models.HistoryQuery{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, page.Data, 50)
	assert.Equal(t, int64(120), page.Pagination.Total)
	assert.True(t, page.Pagination.HasMore)
	assert.Equal(t, lastID, page.Data[0].ID, "newest first")
	assert.True(t, page.Data[0].CreatedAt.After(page.Data[1].CreatedAt))

	page, err = c.Reading.History(ctx, models.SensorTemperature, cow.ID, models.HistoryQuery{Limit: 50, Offset: 100})
	require.NoError(t, err)
	assert.Len(t, page.Data, 20)
	assert.False(t, page.Pagination.HasMore)
	assert.Equal(t, 100, page.Pagination.Offset)

	page, err = c.Reading.History(ctx, models.SensorTemperature, cow.ID, models.HistoryQuery{Offset: 500})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Equal(t, DefaultHistoryLimit, page.Pagination.Limit)
}

func TestHistoryTimeRange(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	start := clock.Now()
	for range 5 {
		_, err := c.Reading.InsertTemperature(ctx, cow.ID, 38.0)
		require.NoError(t, err)
		clock.Advance(time.Hour)
	}

	from := start.Add(time.Hour)
	to := start.Add(3 * time.Hour)
	page, err := c.Reading.History(ctx, models.SensorTemperature, cow.ID, models.HistoryQuery{
		Range: models.TimeRange{From: &from, To: &to},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.Total, "from is inclusive, to is exclusive")
	for _, r := range page.Data {
		assert.False(t, r.CreatedAt.Before(from))
		assert.True(t, r.CreatedAt.Before(to))
	}
}

func TestStats(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	{
		stats, err := c.Reading.Stats(ctx, models.SensorTemperature, cow.ID, models.TimeRange{})
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Count)
		assert.Nil(t, stats.Min)
		assert.Nil(t, stats.Max)
		assert.Nil(t, stats.Average)
		assert.Nil(t, stats.FirstRecord)
		assert.Nil(t, stats.LastRecord)
	}

	for _, v := range []float64{38.0, 39.0, 40.1} {
		_, err := c.Reading.InsertTemperature(ctx, cow.ID, v)
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	stats, err := c.Reading.Stats(ctx, models.SensorTemperature, cow.ID, models.TimeRange{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 38.0, *stats.Min)
	assert.Equal(t, 40.1, *stats.Max)
	assert.Equal(t, 39.03, *stats.Average)
	assert.Equal(t, 38.0, *stats.FirstRecord.Temperature)
	assert.Equal(t, 40.1, *stats.LastRecord.Temperature)
	assert.Equal(t, string(health.LabelDemamRingan), stats.LastRecord.Label)
}

func TestActivityReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	standing, err := c.Reading.InsertActivity(ctx, cow.ID, -0.5, -1.5, 11.3)
	require.NoError(t, err)
	assert.Equal(t, string(health.PostureStanding), standing.Category)
	clock.Advance(time.Second)

	_, err = c.Reading.InsertActivity(ctx, cow.ID, 3, 4, 0)
	require.NoError(t, err)

	latest, err := c.Reading.Latest(ctx, models.SensorActivity, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, string(health.PostureAbnormal), latest.Label)
	require.NotNil(t, latest.Magnitude)
	assert.InDelta(t, 5.0, *latest.Magnitude, 1e-9)
	assert.Nil(t, latest.Temperature)

	stats, err := c.Reading.Stats(ctx, models.SensorActivity, cow.ID, models.TimeRange{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 5.0, *stats.Min, "activity stats are over magnitude")
	assert.Equal(t, common.Round(health.Magnitude(-0.5, -1.5, 11.3), 2), *stats.Max)
}

func TestStatusFollowsThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	status, err := c.Reading.Status(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOffline, status.Status)
	assert.Equal(t, health.MessageNoData, status.Message)
	assert.Nil(t, status.LastUpdate)

	_, err = c.Reading.InsertTemperature(ctx, cow.ID, 38.5)
	require.NoError(t, err)
	_, err = c.Reading.InsertActivity(ctx, cow.ID, -0.5, -1.5, 11.3)
	require.NoError(t, err)

	status, err = c.Reading.Status(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOnline, status.Status)
	require.NotNil(t, status.LastUpdate)
	assert.True(t, status.LastUpdate.Equal(clock.Now()))

	clock.Advance(DefaultActivityStaleAfter + time.Second)
	status, err = c.Reading.Status(ctx, models.SensorActivity, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOffline, status.Status)

	status, err = c.Reading.Status(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOnline, status.Status, "temperature has a longer threshold")

	clock.Advance(DefaultTemperatureStaleAfter)
	status, err = c.Reading.Status(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOffline, status.Status)
}

func TestSeriesAndDistribution(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, clock, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)
	start := clock.Now()

	insert := func(v float64, after time.Duration) {
		clock.Advance(after)
		_, err := c.Reading.InsertTemperature(ctx, cow.ID, v)
		require.NoError(t, err)
	}
	insert(38.0, 0)
	insert(39.0, 30*time.Minute)
	insert(42.0, 40*time.Minute)

	buckets, err := c.Reading.Series(ctx, models.SensorTemperature, cow.ID, health.GranularityHour, models.TimeRange{})
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.True(t, buckets[0].Start.Equal(start))
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 38.5, buckets[0].Average, 1e-9)
	assert.True(t, buckets[1].Start.Equal(start.Add(time.Hour)))
	assert.InDelta(t, 42.0, buckets[1].Average, 1e-9)

	dist, err := c.Reading.Distribution(ctx, cow.ID, models.TimeRange{})
	require.NoError(t, err)
	require.Len(t, dist, len(health.TemperatureLabels))
	counts := map[health.TemperatureLabel]int{}
	for _, lc := range dist {
		counts[lc.Label] = lc.Count
	}
	assert.Equal(t, 2, counts[health.LabelNormal])
	assert.Equal(t, 1, counts[health.LabelKritis])
	assert.Equal(t, 0, counts[health.LabelHipotermia])

	empty, err := c.Reading.Series(ctx, models.SensorActivity, cow.ID, health.GranularityDay, models.TimeRange{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	for range 3 {
		_, err := c.Reading.InsertTemperature(ctx, cow.ID, 38.0)
		require.NoError(t, err)
	}
	_, err := c.Reading.InsertActivity(ctx, cow.ID, 0, 0, 0)
	require.NoError(t, err)

	deleted, err := c.Reading.DeleteReadings(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	_, err = c.Reading.Latest(ctx, models.SensorTemperature, cow.ID)
	assert.ErrorIs(t, err, ErrNoReadings)
	_, err = c.Reading.Latest(ctx, models.SensorActivity, cow.ID)
	assert.NoError(t, err, "other sensor untouched")
}

func TestInsertTemperature_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)
	defer common.SetTestLoggerNop()

	ctrl, c, _, _ := GetMockCattleWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	user := seedUser(t, c, "a@farm.test")
	cow := seedCow(t, c, user.ID)

	_, err := c.Reading.InsertTemperature(context.Background(), cow.ID, 40.0)
	require.NoError(t, err)

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			reading, ok := lobj["reading"].(map[string]any)
			if ok &&
				lobj["category"] == "reading" &&
				lobj["logger"] == "cattle_core" &&
				lobj["msg"] == "Received temperature reading" &&
				reading["cow_id"] == float64(cow.ID) &&
				reading["temperature"] == 40.0 {
				found = true
			}
		}
		assert.True(t, found)
	}

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "notification" &&
				lobj["msg"] == "Notification saved" &&
				lobj["cow_id"] == float64(cow.ID) {
				found = true
			}
		}
		assert.True(t, found, "a fever reading raises a notification")
	}
}
