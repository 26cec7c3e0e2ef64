package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
)

func sensorOf(fullMethod string) string {
	switch fullMethod {
	case MethodPostTemperature:
		return "temperature"
	case MethodPostActivity:
		return "activity"
	}
	return "unknown"
}

// CreateRateLimitInterceptor limits the listed methods per cow_id. Requests
// without a usable cow_id, or naming no active cow, pass through untouched
// and are rejected by the handler, so they never create a limiter entry.
func (s *SensorServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if r, ok := req.(*structpb.Struct); ok {
				if cowID, ok := cowIDOf(r); ok && s.RateLimiterStore != nil && s.isActiveCow(ctx, cowID) && !s.CheckCowLimiter(cowID) {
					metrics.ReadingsRejected.WithLabelValues(sensorOf(info.FullMethod), "rate_limited").Inc()
					return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
				}
			}
		}

		return handler(ctx, req)
	}
}

func (s *SensorServer) isActiveCow(ctx context.Context, cowID uint) bool {
	_, err := s.Cattle.Cow.FindActiveCow(ctx, cowID)
	return err == nil
}

func cowIDOf(r *structpb.Struct) (uint, bool) {
	v, ok := r.GetFields()[fieldCowID]
	if !ok {
		return 0, false
	}
	id, err := cattle.CowIDFromNumber(v.GetNumberValue())
	return id, err == nil
}

func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger := common.GetLoggerWith(common.LoggerNameGrpcServer)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		}
		switch status.Code(err) {
		case codes.OK:
			logger.Info("Call served", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable:
			logger.Error("Call failed", append(fields, zap.Error(err))...)
		default:
			logger.Warn("Call rejected", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}
