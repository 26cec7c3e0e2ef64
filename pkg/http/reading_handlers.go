package http

import (
	"net/http"

	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

// ownedCow resolves the cow named by the path param and checks it belongs to
// the caller. Soft deleted cows resolve too, their history stays readable.
func (rs *RestfulServer) ownedCow(c *gin.Context, param string) (*models.Cow, bool) {
	cowID, err := parseID(c, param)
	if err != nil {
		renderError(c, err)
		return nil, false
	}
	cow, err := rs.Cattle.Cow.GetCow(c.Request.Context(), currentUserID(c), cowID)
	if err != nil {
		renderError(c, err)
		return nil, false
	}
	return cow, true
}

func (rs *RestfulServer) GetLatest(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}

		reading, err := rs.Cattle.Reading.Latest(c.Request.Context(), sensor, cow.ID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, reading)
	}
}

func (rs *RestfulServer) GetHistory(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}

		var params HistoryParams
		if err := historyParamsSchema.Parse(zhttp.Request(c.Request), &params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
		tr, err := parseTimeRange(params.StartDate, params.EndDate)
		if err != nil {
			renderError(c, err)
			return
		}

		page, err := rs.Cattle.Reading.History(c.Request.Context(), sensor, cow.ID, models.HistoryQuery{
			Limit:  params.Limit,
			Offset: params.Offset,
			Range:  tr,
		})
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// rangeOf parses startDate/endDate from the query, answering 400 on failure.
func rangeOf(c *gin.Context) (models.TimeRange, bool) {
	var params RangeParams
	if err := rangeParamsSchema.Parse(zhttp.Request(c.Request), &params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return models.TimeRange{}, false
	}
	tr, err := parseTimeRange(params.StartDate, params.EndDate)
	if err != nil {
		renderError(c, err)
		return models.TimeRange{}, false
	}
	return tr, true
}

func (rs *RestfulServer) GetStats(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}
		tr, ok := rangeOf(c)
		if !ok {
			return
		}

		stats, err := rs.Cattle.Reading.Stats(c.Request.Context(), sensor, cow.ID, tr)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (rs *RestfulServer) GetStatus(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}

		status, err := rs.Cattle.Reading.Status(c.Request.Context(), sensor, cow.ID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

func (rs *RestfulServer) GetSeries(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}

		var params SeriesParams
		if err := seriesParamsSchema.Parse(zhttp.Request(c.Request), &params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err})
			return
		}
		if params.Interval == "" {
			params.Interval = string(health.GranularityHour)
		}
		granularity, err := health.ParseGranularity(params.Interval)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		tr, err := parseTimeRange(params.StartDate, params.EndDate)
		if err != nil {
			renderError(c, err)
			return
		}

		buckets, err := rs.Cattle.Reading.Series(c.Request.Context(), sensor, cow.ID, granularity, tr)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"interval": granularity, "buckets": buckets})
	}
}

func (rs *RestfulServer) GetDistribution(c *gin.Context) {
	cow, ok := rs.ownedCow(c, "cowId")
	if !ok {
		return
	}
	tr, ok := rangeOf(c)
	if !ok {
		return
	}

	dist, err := rs.Cattle.Reading.Distribution(c.Request.Context(), cow.ID, tr)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

func (rs *RestfulServer) DeleteReadings(sensor models.SensorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		cow, ok := rs.ownedCow(c, "cowId")
		if !ok {
			return
		}

		deleted, err := rs.Cattle.Reading.DeleteReadings(c.Request.Context(), sensor, cow.ID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
