package main

import (
	"errors"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"liyu1981.xyz/cattle-health-service/pkg/common"
	_ "liyu1981.xyz/cattle-health-service/pkg/testing"
)

func TestTeardownRunsNewestFirst(t *testing.T) {
	var order []string
	var release teardown
	release.add(func() error {
		order = append(order, "db")
		return errors.New("db close failed")
	})
	release.add(func() error {
		order = append(order, "sweeper")
		return nil
	})
	release.add(func() error {
		order = append(order, "http")
		return errors.New("http shutdown failed")
	})

	err := release.run()
	assert.Equal(t, []string{"http", "sweeper", "db"}, order)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)

	var empty teardown
	assert.NoError(t, empty.run())
}

func testConfig(t *testing.T) *common.Config {
	return &common.Config{
		DB:                   common.DBConfig{Type: "file", Path: filepath.Join(t.TempDir(), "cattle.db")},
		HttpHostPort:         "127.0.0.1:0",
		JWTSecret:            "test-secret",
		JWTExpiry:            time.Hour,
		DefaultRate:          5,
		DefaultBurst:         10,
		RequestTimeout:       time.Second,
		OfflineSweepSchedule: "@every 1m",
	}
}

func TestRunServe_FailedStartReturnsError(t *testing.T) {
	common.SetTestLoggerNop()

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg = testConfig(t)
		cfg.JWTSecret = ""
		assert.Error(t, runServe(nil, nil))
	})

	t.Run("bad sweep schedule", func(t *testing.T) {
		cfg = testConfig(t)
		cfg.OfflineSweepSchedule = "not a schedule"
		assert.ErrorContains(t, runServe(nil, nil), "schedule offline sweep")
	})

	t.Run("grpc port taken", func(t *testing.T) {
		held, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer held.Close()

		cfg = testConfig(t)
		cfg.GrpcHostPort = held.Addr().String()
		assert.ErrorContains(t, runServe(nil, nil), "grpc listen")
	})
}
