package models

import (
	"time"

	"gorm.io/datatypes"
	"liyu1981.xyz/cattle-health-service/pkg/health"
)

type SensorType string

const (
	SensorTemperature SensorType = "temperature"
	SensorActivity    SensorType = "activity"
)

var SensorTypes = []SensorType{SensorTemperature, SensorActivity}

type CheckupStatus string

const (
	CheckupPending CheckupStatus = "Belum Diperiksa"
	CheckupDone    CheckupStatus = "Sudah Diperiksa"
)

type NotificationType string

const (
	NotificationTypeTemperature   NotificationType = "temperature"
	NotificationTypeActivity      NotificationType = "activity"
	NotificationTypeSensorOffline NotificationType = "sensor_offline"
	NotificationTypeCheckup       NotificationType = "checkup"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Cow is a cattle record. Soft deletion is an explicit flag so deleted rows
// stay visible to restore and to the readings they own.
type Cow struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OwnerID       uint            `gorm:"index;not null" json:"owner_id"`
	Tag           string          `gorm:"size:32;index;not null" json:"tag"`
	Age           string          `gorm:"size:64" json:"age"`
	IsDeleted     bool            `gorm:"index;not null;default:false" json:"is_deleted"`
	DeletedAt     *time.Time      `json:"deleted_at"`
	CheckupStatus CheckupStatus   `gorm:"size:32;not null;default:'Belum Diperiksa'" json:"checkup_status"`
	CheckupDate   *datatypes.Date `json:"checkup_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Owner               User                 `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TemperatureReadings []TemperatureReading `gorm:"foreignKey:CowID;constraint:OnDelete:CASCADE" json:"-"`
	ActivityReadings    []ActivityReading    `gorm:"foreignKey:CowID;constraint:OnDelete:CASCADE" json:"-"`
}

type TemperatureReading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CowID       uint      `gorm:"index:idx_temperature_cow_created,priority:1;not null" json:"cow_id"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	CreatedAt   time.Time `gorm:"index:idx_temperature_cow_created,priority:2" json:"created_at"`
}

type ActivityReading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CowID     uint      `gorm:"index:idx_activity_cow_created,priority:1;not null" json:"cow_id"`
	AccelX    float64   `gorm:"not null" json:"accel_x"`
	AccelY    float64   `gorm:"not null" json:"accel_y"`
	AccelZ    float64   `gorm:"not null" json:"accel_z"`
	Category  string    `gorm:"size:32" json:"category"`
	CreatedAt time.Time `gorm:"index:idx_activity_cow_created,priority:2" json:"created_at"`
}

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index;not null" json:"user_id"`
	CowID     uint             `gorm:"index;not null" json:"cow_id"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	Sensor    SensorType       `gorm:"size:20" json:"sensor,omitempty"`
	Severity  Severity         `gorm:"size:10;not null" json:"severity"`
	Message   string           `gorm:"size:500" json:"message"`
	IsRead    bool             `gorm:"index;not null;default:false" json:"is_read"`
	CreatedAt time.Time        `gorm:"index" json:"created_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Cow  Cow  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (r TemperatureReading) Sample() health.Sample {
	return health.Sample{At: r.CreatedAt, Value: r.Temperature}
}

func (r TemperatureReading) View() ReadingView {
	temperature := r.Temperature
	c := health.ClassifyTemperature(r.Temperature)
	return ReadingView{
		ID:          r.ID,
		CowID:       r.CowID,
		Temperature: &temperature,
		Label:       string(c.Label),
		Color:       c.Color,
		CreatedAt:   r.CreatedAt,
	}
}

func (r ActivityReading) Magnitude() float64 {
	return health.Magnitude(r.AccelX, r.AccelY, r.AccelZ)
}

func (r ActivityReading) Sample() health.Sample {
	return health.Sample{At: r.CreatedAt, Value: r.Magnitude()}
}

func (r ActivityReading) View() ReadingView {
	x, y, z, m := r.AccelX, r.AccelY, r.AccelZ, r.Magnitude()
	label := r.Category
	if label == "" {
		label = string(health.ClassifyActivity(x, y, z))
	}
	return ReadingView{
		ID:        r.ID,
		CowID:     r.CowID,
		AccelX:    &x,
		AccelY:    &y,
		AccelZ:    &z,
		Magnitude: &m,
		Label:     label,
		CreatedAt: r.CreatedAt,
	}
}
