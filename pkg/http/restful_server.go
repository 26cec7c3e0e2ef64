package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"liyu1981.xyz/cattle-health-service/pkg/auth"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

type RestfulServer struct {
	Server           *gin.Engine
	Cattle           *cattle.Cattle
	RateLimiterStore *cattle.RateLimiterStore
	Tokens           *auth.TokenService
	RequestTimeout   time.Duration
	// AllowOrigins enables CORS for the dashboard origins; empty disables it.
	AllowOrigins []string
}

func (rs *RestfulServer) CheckCowLimiter(cowID uint) bool {
	if rs.RateLimiterStore == nil {
		return true
	}
	return rs.RateLimiterStore.Allow(cowID)
}

func (rs *RestfulServer) SetLimiter(cowID uint, cowRate float64, cowBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(cowID, rate.Limit(cowRate), cowBurst)
}

func (rs *RestfulServer) Setup() {
	if len(rs.AllowOrigins) > 0 {
		rs.Server.Use(cors.New(cors.Config{
			AllowOrigins:     rs.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Authorization", "Content-Type", HeaderRequestID},
			ExposeHeaders:    []string{HeaderRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	rs.Server.Use(
		RequestID(),
		AccessLog(),
		Recovery(),
		Metrics(),
		RequestTimeout(rs.RequestTimeout),
	)

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := rs.Server.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", rs.Register)
		authGroup.POST("/login", rs.Login)
		authGroup.GET("/me", rs.RequireAuth(), rs.Me)
	}

	// sensors post without a user session, limited per cow
	api.POST("/temperature", rs.PostTemperature)
	api.POST("/activity", rs.PostActivity)

	for _, sensor := range models.SensorTypes {
		readings := api.Group("/"+string(sensor)+"/:cowId", rs.RequireAuth())
		{
			readings.GET("/latest", rs.GetLatest(sensor))
			readings.GET("/history", rs.GetHistory(sensor))
			readings.GET("/stats", rs.GetStats(sensor))
			readings.GET("/status", rs.GetStatus(sensor))
			readings.GET("/series", rs.GetSeries(sensor))
			readings.DELETE("/readings", rs.DeleteReadings(sensor))
			if sensor == models.SensorTemperature {
				readings.GET("/distribution", rs.GetDistribution)
			}
		}
	}

	cows := api.Group("/cows", rs.RequireAuth())
	{
		cows.GET("", rs.ListCows)
		cows.POST("", rs.CreateCow)
		cows.GET("/deleted", rs.ListDeletedCows)
		cows.PUT("/restore/:id", rs.RestoreCow)
		cows.GET("/:id", rs.GetCow)
		cows.PUT("/:id", rs.UpdateCow)
		cows.PUT("/:id/checkup", rs.UpdateCheckup)
		cows.DELETE("/:id", rs.SoftDeleteCow)
		cows.DELETE("/:id/permanent", rs.PurgeCow)
	}

	notifications := api.Group("/notifications", rs.RequireAuth())
	{
		notifications.GET("", rs.ListNotifications)
		notifications.GET("/unread-count", rs.UnreadCount)
		notifications.PUT("/read-all", rs.MarkAllRead)
		notifications.PUT("/:id/read", rs.MarkRead)
		notifications.DELETE("/:id", rs.DeleteNotification)
	}

	api.POST("/limiter/:cowId", rs.RequireAuth(), rs.PostLimiter)
}
