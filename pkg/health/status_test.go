package health

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	threshold := 60 * time.Second

	{
		last := now
		st := DeriveStatus(now, &last, threshold)
		assert.Equal(t, StateOnline, st.Status)
		require.NotNil(t, st.LastUpdate)
		assert.True(t, st.LastUpdate.Equal(now))
	}

	{
		last := now.Add(-threshold)
		st := DeriveStatus(now, &last, threshold)
		assert.Equal(t, StateOnline, st.Status, "exactly at the threshold is still online")
	}

	{
		last := now.Add(-threshold - time.Second)
		st := DeriveStatus(now, &last, threshold)
		assert.Equal(t, StateOffline, st.Status)
		assert.Equal(t, MessageOffline, st.Message)
		require.NotNil(t, st.LastUpdate)
	}

	{
		st := DeriveStatus(now, nil, threshold)
		assert.Equal(t, StateOffline, st.Status)
		assert.Equal(t, MessageNoData, st.Message)
		assert.Nil(t, st.LastUpdate)
	}
}

func TestDeriveStatusDoesNotAliasInput(t *testing.T) {
	now := time.Now()
	last := now
	st := DeriveStatus(now, &last, time.Minute)
	last = last.Add(-time.Hour)
	assert.True(t, st.LastUpdate.Equal(now))
}
