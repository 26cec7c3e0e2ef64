package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
	"liyu1981.xyz/cattle-health-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const transportHTTP = "http"

type TemperatureRequest struct {
	CowID       float64 `json:"cow_id" zog:"cow_id"`
	Temperature float64 `json:"temperature" zog:"temperature"`
}

var temperatureRequestSchema = z.Struct(z.Shape{
	"CowID":       z.Float64().Required(),
	"Temperature": z.Float64().Required(),
})

type ActivityRequest struct {
	CowID  float64 `json:"cow_id" zog:"cow_id"`
	AccelX float64 `json:"accel_x" zog:"accel_x"`
	AccelY float64 `json:"accel_y" zog:"accel_y"`
	AccelZ float64 `json:"accel_z" zog:"accel_z"`
}

var activityRequestSchema = z.Struct(z.Shape{
	"CowID":  z.Float64().Required(),
	"AccelX": z.Float64().Required(),
	"AccelY": z.Float64().Required(),
	"AccelZ": z.Float64().Required(),
})

func rejectReason(err error) string {
	switch {
	case errors.Is(err, cattle.ErrCowNotFound):
		return "unknown_cow"
	case errors.Is(err, cattle.ErrInvalidInput):
		return "validation"
	}
	return "error"
}

// admitReading resolves the cow before spending from its limiter, so ids
// that name no active cow never get a limiter entry.
func (rs *RestfulServer) admitReading(c *gin.Context, sensor string, rawCowID float64) (uint, bool) {
	cowID, err := cattle.CowIDFromNumber(rawCowID)
	if err == nil {
		_, err = rs.Cattle.Cow.FindActiveCow(c.Request.Context(), cowID)
	}
	if err != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, rejectReason(err)).Inc()
		renderError(c, err)
		return 0, false
	}

	if !rs.CheckCowLimiter(cowID) {
		metrics.ReadingsRejected.WithLabelValues(sensor, "rate_limited").Inc()
		c.Status(http.StatusTooManyRequests)
		return 0, false
	}
	return cowID, true
}

func (rs *RestfulServer) PostTemperature(c *gin.Context) {
	sensor := string(models.SensorTemperature)

	var req TemperatureRequest
	if err := temperatureRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, "validation").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cowID, ok := rs.admitReading(c, sensor, req.CowID)
	if !ok {
		return
	}

	reading, err := rs.Cattle.Reading.InsertTemperature(c.Request.Context(), cowID, req.Temperature)
	if err != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, rejectReason(err)).Inc()
		renderError(c, err)
		return
	}

	metrics.ReadingsIngested.WithLabelValues(sensor, transportHTTP).Inc()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "insertedId": reading.ID})
}

func (rs *RestfulServer) PostActivity(c *gin.Context) {
	sensor := string(models.SensorActivity)

	var req ActivityRequest
	if err := activityRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, "validation").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cowID, ok := rs.admitReading(c, sensor, req.CowID)
	if !ok {
		return
	}

	reading, err := rs.Cattle.Reading.InsertActivity(c.Request.Context(), cowID, req.AccelX, req.AccelY, req.AccelZ)
	if err != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, rejectReason(err)).Inc()
		renderError(c, err)
		return
	}

	metrics.ReadingsIngested.WithLabelValues(sensor, transportHTTP).Inc()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "insertedId": reading.ID})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().GTE(0).Required(),
	"Burst": z.Int().GTE(0).Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	cow, ok := rs.ownedCow(c, "cowId")
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(cow.ID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if err := rs.Cattle.Db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
