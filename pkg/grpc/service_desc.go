package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Sensors speak a schemaless service: every request and response is a
// google.protobuf.Struct, so collars need no generated stubs.
const (
	ServiceName = "cattlehealth.SensorService"

	MethodPostTemperature = "/" + ServiceName + "/PostTemperature"
	MethodPostActivity    = "/" + ServiceName + "/PostActivity"
)

type SensorServiceServer interface {
	PostTemperature(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PostActivity(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterSensorServiceServer(s grpc.ServiceRegistrar, srv SensorServiceServer) {
	s.RegisterService(&SensorServiceDesc, srv)
}

func unaryHandler(
	fullMethod string,
	call func(SensorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SensorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SensorServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var SensorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SensorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PostTemperature",
			Handler:    unaryHandler(MethodPostTemperature, SensorServiceServer.PostTemperature),
		},
		{
			MethodName: "PostActivity",
			Handler:    unaryHandler(MethodPostActivity, SensorServiceServer.PostActivity),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cattlehealth/sensor.proto",
}

type SensorServiceClient interface {
	PostTemperature(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	PostActivity(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sensorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSensorServiceClient(cc grpc.ClientConnInterface) SensorServiceClient {
	return &sensorServiceClient{cc}
}

func (c *sensorServiceClient) PostTemperature(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodPostTemperature, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sensorServiceClient) PostActivity(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodPostActivity, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
