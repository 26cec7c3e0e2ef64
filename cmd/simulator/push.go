package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/cattle-health-service/pkg/client"
	cattleGrpc "liyu1981.xyz/cattle-health-service/pkg/grpc"
)

var (
	grpcHostPort string
	cowIDsFlag   string
	every        time.Duration
	rounds       int
	feverRate    float64
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send random temperature and activity readings for a set of cows",
	RunE:  runPush,
}

func init() {
	pushCmd.Flags().StringVar(&grpcHostPort, "grpc", "", "gRPC host:port; when set, half of the readings go over gRPC")
	pushCmd.Flags().StringVar(&cowIDsFlag, "cows", "", "comma separated cow ids; defaults to every cow of the logged in account")
	pushCmd.Flags().DurationVar(&every, "every", 5*time.Second, "delay between readings of one cow")
	pushCmd.Flags().IntVar(&rounds, "rounds", 0, "readings per cow and sensor, 0 runs until interrupted")
	pushCmd.Flags().Float64Var(&feverRate, "fever-rate", 0.1, "share of temperature readings drawn from the fever range")
}

type sender struct {
	http *client.Client
	grpc cattleGrpc.SensorServiceClient

	sent   atomic.Int64
	failed atomic.Int64
}

func parseCowIDs(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid cow id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func resolveCows(ctx context.Context, c *client.Client) ([]uint, error) {
	if cowIDsFlag != "" {
		return parseCowIDs(cowIDsFlag)
	}
	if c.Token() == "" {
		return nil, fmt.Errorf("either --cows or --email/--password is required")
	}
	cows, err := c.ListCows(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(cows))
	for _, cow := range cows {
		ids = append(ids, cow.ID)
	}
	return ids, nil
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	httpClient, err := newClient(ctx)
	if err != nil {
		return err
	}
	cowIDs, err := resolveCows(ctx, httpClient)
	if err != nil {
		return err
	}
	if len(cowIDs) == 0 {
		return fmt.Errorf("no cows to simulate")
	}

	s := &sender{http: httpClient}
	if grpcHostPort != "" {
		conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC server: %w", err)
		}
		defer conn.Close()
		s.grpc = cattleGrpc.NewSensorServiceClient(conn)
	}

	fmt.Printf("simulating %v cows every %v\n", len(cowIDs), every)

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for _, cowID := range cowIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.simulateCow(ctx, cowID)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\nsent %v readings (%v failed) in %v seconds, throughput=%v readings/second\n",
		s.sent.Load(), s.failed.Load(), usedTime.Seconds(), float64(s.sent.Load())/usedTime.Seconds(),
	)
	return nil
}

func (s *sender) simulateCow(ctx context.Context, cowID uint) {
	for i := 0; rounds == 0 || i < rounds; i++ {
		s.report(cowID, "temperature", s.sendTemperature(ctx, cowID))
		s.report(cowID, "activity", s.sendActivity(ctx, cowID))

		select {
		case <-ctx.Done():
			return
		case <-time.After(every):
		}
	}
}

func (s *sender) report(cowID uint, sensor string, err error) {
	if err != nil {
		s.failed.Add(1)
		fmt.Printf("\ncow %v %s: %v\n", cowID, sensor, err)
		return
	}
	s.sent.Add(1)
	fmt.Printf("\rsent %v readings", s.sent.Load())
}

func (s *sender) useGrpc() bool {
	return s.grpc != nil && flipCoin()
}

func randomTemperature() float64 {
	if rnd.Float64() < feverRate {
		return rndFloat64(39.6, 42.0, 1)
	}
	return rndFloat64(37.6, 39.4, 1)
}

// randomAcceleration lands inside one of the posture windows most of the
// time, and now and then somewhere that classifies as abnormal.
func randomAcceleration() (float64, float64, float64) {
	switch rnd.Intn(10) {
	case 0:
		return rndFloat64(-3, 3, 2), rndFloat64(-3, 3, 2), rndFloat64(-9.8, 0, 2)
	case 1, 2:
		return rndFloat64(8.0, 10.5, 2), rndFloat64(-2.5, 2.5, 2), rndFloat64(-1.5, 5.0, 2)
	case 3, 4:
		return rndFloat64(-10.5, -8.0, 2), rndFloat64(-2.5, 2.5, 2), rndFloat64(-1.5, 5.0, 2)
	default:
		return rndFloat64(-0.9, -0.2, 2), rndFloat64(-2.5, -0.7, 2), rndFloat64(11.1, 11.5, 2)
	}
}

func (s *sender) sendTemperature(ctx context.Context, cowID uint) error {
	t := randomTemperature()
	if s.useGrpc() {
		req, err := structpb.NewStruct(map[string]any{"cow_id": cowID, "temperature": t})
		if err != nil {
			return err
		}
		_, err = s.grpc.PostTemperature(ctx, req)
		return err
	}
	_, err := s.http.PostTemperature(ctx, cowID, t)
	return err
}

func (s *sender) sendActivity(ctx context.Context, cowID uint) error {
	x, y, z := randomAcceleration()
	if s.useGrpc() {
		req, err := structpb.NewStruct(map[string]any{"cow_id": cowID, "accel_x": x, "accel_y": y, "accel_z": z})
		if err != nil {
			return err
		}
		_, err = s.grpc.PostActivity(ctx, req)
		return err
	}
	_, err := s.http.PostActivity(ctx, cowID, x, y, z)
	return err
}
