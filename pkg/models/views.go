package models

import "time"

// ReadingView is what query endpoints return for a single reading of either
// sensor type. Fields that do not apply to the sensor are omitted.
type ReadingView struct {
	ID          uint      `json:"id"`
	CowID       uint      `json:"cow_id"`
	Temperature *float64  `json:"temperature,omitempty"`
	AccelX      *float64  `json:"accel_x,omitempty"`
	AccelY      *float64  `json:"accel_y,omitempty"`
	AccelZ      *float64  `json:"accel_z,omitempty"`
	Magnitude   *float64  `json:"magnitude,omitempty"`
	Label       string    `json:"label"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TimeRange bounds a query on created_at. From is inclusive, To is exclusive;
// nil means unbounded.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

type HistoryQuery struct {
	Limit  int
	Offset int
	Range  TimeRange
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type HistoryPage struct {
	Data       []ReadingView `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type ReadingStats struct {
	Count       int          `json:"count"`
	Min         *float64     `json:"min"`
	Max         *float64     `json:"max"`
	Average     *float64     `json:"average"`
	FirstRecord *ReadingView `json:"firstRecord"`
	LastRecord  *ReadingView `json:"lastRecord"`
}

// CowInput carries the editable fields of a cattle record. An empty Tag on
// create means "assign the next free tag".
type CowInput struct {
	Tag string
	Age string
}

type CheckupInput struct {
	Status CheckupStatus
	Date   *time.Time
}
