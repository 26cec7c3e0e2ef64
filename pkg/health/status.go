package health

import "time"

type SensorState string

const (
	StateOnline  SensorState = "online"
	StateOffline SensorState = "offline"
)

const (
	MessageOnline  = "sensor is sending data"
	MessageOffline = "sensor has stopped sending data"
	MessageNoData  = "no data"
)

type SensorStatus struct {
	Status     SensorState `json:"status"`
	Message    string      `json:"message"`
	LastUpdate *time.Time  `json:"last_update"`
}

// DeriveStatus is online when now-last <= threshold. A nil last means the
// sensor never reported and is offline with MessageNoData.
func DeriveStatus(now time.Time, last *time.Time, threshold time.Duration) SensorStatus {
	if last == nil {
		return SensorStatus{Status: StateOffline, Message: MessageNoData}
	}

	lastUpdate := *last
	if now.Sub(lastUpdate) <= threshold {
		return SensorStatus{Status: StateOnline, Message: MessageOnline, LastUpdate: &lastUpdate}
	}
	return SensorStatus{Status: StateOffline, Message: MessageOffline, LastUpdate: &lastUpdate}
}
