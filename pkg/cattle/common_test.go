package cattle

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/cattle-health-service/pkg/cattle/mocks"
	"liyu1981.xyz/cattle-health-service/pkg/db"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type mockServices struct {
	Reading      *mocks.MockIReading
	Cow          *mocks.MockICow
	User         *mocks.MockIUser
	Notification *mocks.MockINotification
}

type useMocks struct {
	Reading      bool
	Cow          bool
	User         bool
	Notification bool
}

func GetMockCattleWithMemorySqliteDialector(t *testing.T, use useMocks) (
	*gomock.Controller,
	*Cattle,
	*testClock,
	mockServices,
) {
	ctrl := gomock.NewController(t)

	m := mockServices{
		Reading:      mocks.NewMockIReading(ctrl),
		Cow:          mocks.NewMockICow(ctrl),
		User:         mocks.NewMockIUser(ctrl),
		Notification: mocks.NewMockINotification(ctrl),
	}

	dbInstance, err := db.OpenAndMigrate(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbInstance.Close() })

	clock := newTestClock()
	c := New(*dbInstance, Settings{Clock: clock.Now})

	opts := ServiceOpts{}
	if use.Reading {
		opts.Reading = m.Reading
	}
	if use.Cow {
		opts.Cow = m.Cow
	}
	if use.User {
		opts.User = m.User
	}
	if use.Notification {
		opts.Notification = m.Notification
	}
	c.WithServices(opts)

	return ctrl, c, clock, m
}

func seedUser(t *testing.T, c *Cattle, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Farmer", Email: email, Password: "x"}
	require.NoError(t, c.Db.Conn.Create(&user).Error)
	return &user
}

func seedCow(t *testing.T, c *Cattle, ownerID uint) *models.Cow {
	t.Helper()
	cow, err := c.GetICow().CreateCow(context.Background(), ownerID, models.CowInput{Age: "2 tahun"})
	require.NoError(t, err)
	return cow
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
