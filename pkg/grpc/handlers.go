package grpc

import (
	"context"
	"errors"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

const (
	transportGRPC = "grpc"
	fieldCowID    = "cow_id"
)

type temperatureMessage struct {
	CowID       float64 `zog:"cow_id"`
	Temperature float64 `zog:"temperature"`
}

var temperatureMessageSchema = z.Struct(z.Shape{
	"CowID":       z.Float64().Required(),
	"Temperature": z.Float64().Required(),
})

type activityMessage struct {
	CowID  float64 `zog:"cow_id"`
	AccelX float64 `zog:"accel_x"`
	AccelY float64 `zog:"accel_y"`
	AccelZ float64 `zog:"accel_z"`
}

var activityMessageSchema = z.Struct(z.Shape{
	"CowID":  z.Float64().Required(),
	"AccelX": z.Float64().Required(),
	"AccelY": z.Float64().Required(),
	"AccelZ": z.Float64().Required(),
})

// toStatus maps core errors onto gRPC codes. Unmapped errors are logged and
// reported as Internal without their text.
func toStatus(err error) error {
	switch {
	case errors.Is(err, cattle.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, cattle.ErrCowNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Ingestion failed", zap.Error(err))
	return status.Error(codes.Internal, "internal server error")
}

func rejectReason(err error) string {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return "validation"
	case codes.NotFound:
		return "unknown_cow"
	}
	return "error"
}

func inserted(id uint) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"ok":          true,
		"inserted_id": float64(id),
	})
}

func (s *SensorServer) insertTemperature(ctx context.Context, msg temperatureMessage) (*models.TemperatureReading, error) {
	cowID, err := cattle.CowIDFromNumber(msg.CowID)
	if err != nil {
		return nil, err
	}
	return s.Cattle.Reading.InsertTemperature(ctx, cowID, msg.Temperature)
}

func (s *SensorServer) insertActivity(ctx context.Context, msg activityMessage) (*models.ActivityReading, error) {
	cowID, err := cattle.CowIDFromNumber(msg.CowID)
	if err != nil {
		return nil, err
	}
	return s.Cattle.Reading.InsertActivity(ctx, cowID, msg.AccelX, msg.AccelY, msg.AccelZ)
}

func (s *SensorServer) PostTemperature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sensor := string(models.SensorTemperature)

	var msg temperatureMessage
	if errs := temperatureMessageSchema.Parse(req.AsMap(), &msg); errs != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, "validation").Inc()
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", errs)
	}

	reading, err := s.insertTemperature(ctx, msg)
	if err != nil {
		st := toStatus(err)
		metrics.ReadingsRejected.WithLabelValues(sensor, rejectReason(st)).Inc()
		return nil, st
	}

	metrics.ReadingsIngested.WithLabelValues(sensor, transportGRPC).Inc()
	return inserted(reading.ID)
}

func (s *SensorServer) PostActivity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sensor := string(models.SensorActivity)

	var msg activityMessage
	if errs := activityMessageSchema.Parse(req.AsMap(), &msg); errs != nil {
		metrics.ReadingsRejected.WithLabelValues(sensor, "validation").Inc()
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", errs)
	}

	reading, err := s.insertActivity(ctx, msg)
	if err != nil {
		st := toStatus(err)
		metrics.ReadingsRejected.WithLabelValues(sensor, rejectReason(st)).Inc()
		return nil, st
	}

	metrics.ReadingsIngested.WithLabelValues(sensor, transportGRPC).Inc()
	return inserted(reading.ID)
}
