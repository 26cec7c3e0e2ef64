package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"liyu1981.xyz/cattle-health-service/pkg/auth"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/db"
	cattleGrpc "liyu1981.xyz/cattle-health-service/pkg/grpc"
	cattleHttp "liyu1981.xyz/cattle-health-service/pkg/http"
)

const shutdownTimeout = 10 * time.Second

// teardown holds release funcs of what runServe started. run calls them
// newest first and keeps going past failures.
type teardown []func() error

func (t *teardown) add(fn func() error) {
	*t = append(*t, fn)
}

func (t teardown) run() error {
	var err error
	for i := len(t) - 1; i >= 0; i-- {
		err = multierr.Append(err, t[i]())
	}
	return err
}

func stopSweeper(sweeper *cattle.OfflineSweeper) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		select {
		case <-sweeper.Stop().Done():
			return nil
		case <-ctx.Done():
			return fmt.Errorf("offline sweep still running: %w", ctx.Err())
		}
	}
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	logger := common.GetLogger()

	var release teardown
	defer func() {
		err = multierr.Append(err, release.run())
		if err != nil {
			logger.Error("Server stopped with errors", zap.Error(err))
			return
		}
		logger.Info("Server exited properly")
	}()

	dialector, err := db.DialectorFromConfig(cfg.DB)
	if err != nil {
		return err
	}
	dbInstance, err := db.OpenAndMigrate(dialector)
	if err != nil {
		return err
	}
	release.add(dbInstance.Close)

	tokens, err := auth.NewTokenService(auth.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTExpiry})
	if err != nil {
		return err
	}

	cattleCore := cattle.New(*dbInstance, cattle.Settings{
		TemperatureStaleAfter: cfg.TemperatureStaleAfter,
		ActivityStaleAfter:    cfg.ActivityStaleAfter,
	})

	// one store for both transports so a cow shares its budget
	limiterStore := cattle.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
	logger.Info("Limiter created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)))

	sweeper := cattle.NewOfflineSweeper(cattleCore, cfg.OfflineSweepSchedule, time.Minute)
	if err := sweeper.Start(); err != nil {
		return fmt.Errorf("schedule offline sweep: %w", err)
	}
	release.add(stopSweeper(sweeper))

	serveErr := make(chan error, 2)

	var grpcServer *grpc.Server
	if cfg.GrpcHostPort != "" {
		sensorServer := cattleGrpc.SensorServer{
			Cattle:           cattleCore,
			RateLimiterStore: limiterStore,
		}
		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}

		grpcServer = sensorServer.NewServer()
		release.add(func() error {
			grpcServer.GracefulStop()
			return nil
		})

		logger.Info("Starting gRPC server on " + cfg.GrpcHostPort)
		go func() {
			if err := grpcServer.Serve(listener); err != nil {
				serveErr <- fmt.Errorf("grpc server failed to serve: %w", err)
			}
		}()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	rs := &cattleHttp.RestfulServer{
		Server:           gin.New(),
		Cattle:           cattleCore,
		RateLimiterStore: limiterStore,
		Tokens:           tokens,
		RequestTimeout:   cfg.RequestTimeout,
		AllowOrigins:     cfg.CorsOrigins,
	}
	rs.Setup()

	httpServer := &http.Server{
		Addr:              cfg.HttpHostPort,
		Handler:           rs.Server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("http server failed to serve: %w", err)
		}
	}()
	release.add(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(ctx)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
		return nil
	case err := <-serveErr:
		logger.Error("Server stopped unexpectedly, shutting down", zap.Error(err))
		return err
	}
}
