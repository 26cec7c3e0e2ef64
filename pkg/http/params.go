package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errInvalidID, name)
	}
	return uint(id), nil
}

// parseDate accepts RFC3339 or YYYY-MM-DD. A date-only upper bound covers the
// whole day, so it is moved to the next midnight.
func parseDate(value string, upperBound bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q must be RFC3339 or YYYY-MM-DD", cattle.ErrInvalidInput, value)
	}
	if upperBound {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}

func parseTimeRange(startDate, endDate string) (models.TimeRange, error) {
	from, err := parseDate(startDate, false)
	if err != nil {
		return models.TimeRange{}, err
	}
	to, err := parseDate(endDate, true)
	if err != nil {
		return models.TimeRange{}, err
	}
	if from != nil && to != nil && !from.Before(*to) {
		return models.TimeRange{}, fmt.Errorf("%w: startDate must be before endDate", cattle.ErrInvalidInput)
	}
	return models.TimeRange{From: from, To: to}, nil
}

type RangeParams struct {
	StartDate string `zog:"startDate"`
	EndDate   string `zog:"endDate"`
}

var rangeParamsSchema = z.Struct(z.Shape{
	"StartDate": z.String().Trim(),
	"EndDate":   z.String().Trim(),
})

type HistoryParams struct {
	Limit     int    `zog:"limit"`
	Offset    int    `zog:"offset"`
	StartDate string `zog:"startDate"`
	EndDate   string `zog:"endDate"`
}

var historyParamsSchema = z.Struct(z.Shape{
	"Limit":     z.Int().GTE(0).LTE(cattle.MaxHistoryLimit),
	"Offset":    z.Int().GTE(0),
	"StartDate": z.String().Trim(),
	"EndDate":   z.String().Trim(),
})

type SeriesParams struct {
	Interval  string `zog:"interval"`
	StartDate string `zog:"startDate"`
	EndDate   string `zog:"endDate"`
}

var seriesParamsSchema = z.Struct(z.Shape{
	"Interval":  z.String().Trim(),
	"StartDate": z.String().Trim(),
	"EndDate":   z.String().Trim(),
})
