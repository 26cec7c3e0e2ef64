package grpc

import (
	"google.golang.org/grpc"

	"liyu1981.xyz/cattle-health-service/pkg/cattle"
)

type SensorServer struct {
	Cattle           *cattle.Cattle
	RateLimiterStore *cattle.RateLimiterStore
}

func (s *SensorServer) CheckCowLimiter(cowID uint) bool {
	if s.RateLimiterStore == nil {
		return true
	}
	return s.RateLimiterStore.Allow(cowID)
}

// NewServer builds a grpc.Server with the sensor service registered behind
// the logging and rate limit interceptors.
func (s *SensorServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		LoggingInterceptor(),
		s.CreateRateLimitInterceptor([]string{MethodPostTemperature, MethodPostActivity}),
	))
	server := grpc.NewServer(opts...)
	RegisterSensorServiceServer(server, s)
	return server
}
