package cattle

import (
	"context"
	"sync"
	"time"

	"liyu1981.xyz/cattle-health-service/pkg/db"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks liyu1981.xyz/cattle-health-service/pkg/cattle IReading,ICow,IUser,INotification

type IReading interface {
	InsertTemperature(ctx context.Context, cowID uint, temperature float64) (*models.TemperatureReading, error)
	InsertActivity(ctx context.Context, cowID uint, x, y, z float64) (*models.ActivityReading, error)
	Latest(ctx context.Context, sensor models.SensorType, cowID uint) (*models.ReadingView, error)
	History(ctx context.Context, sensor models.SensorType, cowID uint, query models.HistoryQuery) (*models.HistoryPage, error)
	Stats(ctx context.Context, sensor models.SensorType, cowID uint, tr models.TimeRange) (*models.ReadingStats, error)
	Status(ctx context.Context, sensor models.SensorType, cowID uint) (*health.SensorStatus, error)
	Series(ctx context.Context, sensor models.SensorType, cowID uint, g health.Granularity, tr models.TimeRange) ([]health.Bucket, error)
	Distribution(ctx context.Context, cowID uint, tr models.TimeRange) ([]health.LabelCount, error)
	DeleteReadings(ctx context.Context, sensor models.SensorType, cowID uint) (int64, error)
}

type ICow interface {
	CreateCow(ctx context.Context, ownerID uint, input models.CowInput) (*models.Cow, error)
	ListCows(ctx context.Context, ownerID uint) ([]models.Cow, error)
	ListDeletedCows(ctx context.Context, ownerID uint) ([]models.Cow, error)
	GetCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error)
	FindActiveCow(ctx context.Context, cowID uint) (*models.Cow, error)
	UpdateCow(ctx context.Context, ownerID, cowID uint, input models.CowInput) (*models.Cow, error)
	UpdateCheckup(ctx context.Context, ownerID, cowID uint, input models.CheckupInput) (*models.Cow, error)
	SoftDeleteCow(ctx context.Context, ownerID, cowID uint) error
	RestoreCow(ctx context.Context, ownerID, cowID uint) (*models.Cow, error)
	PurgeCow(ctx context.Context, ownerID, cowID uint) error
}

type IUser interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
}

type INotification interface {
	NotifyTemperature(ctx context.Context, cow *models.Cow, reading *models.TemperatureReading) error
	NotifyActivity(ctx context.Context, cow *models.Cow, reading *models.ActivityReading) error
	NotifyCheckup(ctx context.Context, cow *models.Cow) error
	SweepOfflineSensors(ctx context.Context) (int, error)
	ListNotifications(ctx context.Context, userID uint, unreadOnly bool) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uint) error
}

// Settings holds the tunables of the core. Zero values fall back to defaults.
type Settings struct {
	TemperatureStaleAfter time.Duration
	ActivityStaleAfter    time.Duration
	Postures              health.PostureTable
	Clock                 func() time.Time
}

const (
	DefaultTemperatureStaleAfter = 60 * time.Second
	DefaultActivityStaleAfter    = 30 * time.Second
)

type Cattle struct {
	Db           db.DB
	Settings     Settings
	Reading      IReading
	Cow          ICow
	User         IUser
	Notification INotification

	// tagMu serializes tag allocation within this process. Active tags have
	// no unique index, so a second instance could still race.
	tagMu sync.Mutex
}

type ServiceOpts struct {
	Reading      IReading
	Cow          ICow
	User         IUser
	Notification INotification
}

func (c *Cattle) WithServices(opts ServiceOpts) *Cattle {
	if opts.Reading != nil {
		c.Reading = opts.Reading
	}
	if opts.Cow != nil {
		c.Cow = opts.Cow
	}
	if opts.User != nil {
		c.User = opts.User
	}
	if opts.Notification != nil {
		c.Notification = opts.Notification
	}
	return c
}

// New builds a core with every service backed by the given database.
func New(dbInstance db.DB, settings Settings) *Cattle {
	c := &Cattle{Db: dbInstance, Settings: settings}
	return c.WithServices(ServiceOpts{
		Reading:      c.GetIReading(),
		Cow:          c.GetICow(),
		User:         c.GetIUser(),
		Notification: c.GetINotification(),
	})
}

// now is always UTC so stored timestamps sort lexically on sqlite.
func (c *Cattle) now() time.Time {
	if c.Settings.Clock != nil {
		return c.Settings.Clock().UTC()
	}
	return time.Now().UTC()
}

func (c *Cattle) staleAfter(sensor models.SensorType) time.Duration {
	switch sensor {
	case models.SensorActivity:
		if c.Settings.ActivityStaleAfter > 0 {
			return c.Settings.ActivityStaleAfter
		}
		return DefaultActivityStaleAfter
	default:
		if c.Settings.TemperatureStaleAfter > 0 {
			return c.Settings.TemperatureStaleAfter
		}
		return DefaultTemperatureStaleAfter
	}
}

func (c *Cattle) postures() health.PostureTable {
	if len(c.Settings.Postures) > 0 {
		return c.Settings.Postures
	}
	return health.DefaultPostureTable
}
