package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/cattle-health-service/pkg/auth"
	"liyu1981.xyz/cattle-health-service/pkg/cattle"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/db"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	chttp "liyu1981.xyz/cattle-health-service/pkg/http"
	"liyu1981.xyz/cattle-health-service/pkg/models"
	_ "liyu1981.xyz/cattle-health-service/pkg/testing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startAPI(t *testing.T) (*httptest.Server, *models.Cow) {
	dbInstance, err := db.OpenAndMigrate(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbInstance.Close() })

	tokens, err := auth.NewTokenService(auth.TokenConfig{Secret: "test-secret"})
	require.NoError(t, err)

	core := cattle.New(*dbInstance, cattle.Settings{})
	rs := &chttp.RestfulServer{Server: gin.New(), Cattle: core, Tokens: tokens, RequestTimeout: 5 * time.Second}
	rs.Setup()

	ctx := context.Background()
	user, err := core.User.Register(ctx, "Budi", "budi@farm.test", "rahasia123")
	require.NoError(t, err)
	cow, err := core.Cow.CreateCow(ctx, user.ID, models.CowInput{})
	require.NoError(t, err)

	server := httptest.NewServer(rs.Server)
	t.Cleanup(server.Close)
	return server, cow
}

func TestClientRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	server, cow := startAPI(t)
	c := New(server.URL + "/")
	ctx := context.Background()

	_, err := c.Latest(ctx, models.SensorTemperature, cow.ID)
	assert.True(t, IsStatus(err, http.StatusUnauthorized), "queries need a token, got %v", err)

	user, err := c.Login(ctx, "budi@farm.test", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "Budi", user.Name)
	assert.NotEmpty(t, c.Token())

	_, err = c.Latest(ctx, models.SensorTemperature, cow.ID)
	assert.True(t, IsStatus(err, http.StatusNotFound), "no readings yet, got %v", err)

	id, err := c.PostTemperature(ctx, cow.ID, 38.2)
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = c.PostActivity(ctx, cow.ID, -9.2, 0.3, 2.0)
	require.NoError(t, err)

	latest, err := c.Latest(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, id, latest.ID)
	assert.Equal(t, string(health.LabelNormal), latest.Label)

	latest, err = c.Latest(ctx, models.SensorActivity, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, string(health.PostureLyingLeft), latest.Label)

	status, err := c.Status(ctx, models.SensorTemperature, cow.ID)
	require.NoError(t, err)
	assert.Equal(t, health.StateOnline, status.Status)

	page, err := c.History(ctx, models.SensorTemperature, cow.ID, HistoryOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 10, page.Pagination.Limit)

	cows, err := c.ListCows(ctx)
	require.NoError(t, err)
	require.Len(t, cows, 1)
	assert.Equal(t, "SAPI-001", cows[0].Tag)
}

func TestClientErrors(t *testing.T) {
	common.SetTestLoggerNop()

	server, _ := startAPI(t)
	c := New(server.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "budi@farm.test", "wrong")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Empty(t, c.Token())

	_, err = c.PostTemperature(ctx, 9999, 38.0)
	assert.True(t, IsStatus(err, http.StatusNotFound), "got %v", err)

	_, err = c.History(ctx, models.SensorActivity, 1, HistoryOptions{StartDate: "bad"})
	assert.True(t, IsStatus(err, http.StatusUnauthorized), "got %v", err)

	// a cancelled context never reaches the server
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.ListCows(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIErrorMessage(t *testing.T) {
	assert.Equal(t, "api: 404 cow not found", (&APIError{StatusCode: 404, Message: "cow not found"}).Error())
	assert.Equal(t, "api: 429 Too Many Requests", (&APIError{StatusCode: 429}).Error())
	assert.False(t, IsStatus(context.Canceled, 404))

	wrapped := fmt.Errorf("fetch latest: %w", &APIError{StatusCode: 404})
	assert.True(t, IsStatus(wrapped, 404))
	assert.False(t, IsStatus(wrapped, 500))
}
