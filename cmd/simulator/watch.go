package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"liyu1981.xyz/cattle-health-service/pkg/client"
	"liyu1981.xyz/cattle-health-service/pkg/health"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

var (
	watchCowIDs  string
	watchSensor  string
	pollInterval time.Duration
	switchAfter  time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the latest reading and sensor status of a cow, like the dashboard does",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchCowIDs, "cows", "", "comma separated cow ids; with more than one the watcher rotates between them")
	watchCmd.Flags().StringVar(&watchSensor, "sensor", string(models.SensorTemperature), "temperature|activity")
	watchCmd.Flags().DurationVar(&pollInterval, "interval", client.DefaultPollInterval, "poll interval")
	watchCmd.Flags().DurationVar(&switchAfter, "switch-after", 30*time.Second, "how long to stay on one cow when rotating")
}

type snapshot struct {
	Latest *models.ReadingView
	Status *health.SensorStatus
}

func fetchSnapshot(c *client.Client, sensor models.SensorType) client.FetchFunc[uint, snapshot] {
	return func(ctx context.Context, cowID uint) (snapshot, error) {
		status, err := c.Status(ctx, sensor, cowID)
		if err != nil {
			return snapshot{}, err
		}
		latest, err := c.Latest(ctx, sensor, cowID)
		if err != nil && !client.IsStatus(err, http.StatusNotFound) {
			return snapshot{}, err
		}
		return snapshot{Latest: latest, Status: status}, nil
	}
}

func render(u client.Update[uint, snapshot]) {
	prefix := fmt.Sprintf("[%s] cow %v (gen %v)", u.At.Format(time.TimeOnly), u.Key, u.Generation)
	if u.Err != nil {
		fmt.Printf("%s error: %v\n", prefix, u.Err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", prefix, u.Value.Status.Status)
	if r := u.Value.Latest; r != nil {
		switch {
		case r.Temperature != nil:
			fmt.Fprintf(&b, " %.1f°C %s", *r.Temperature, r.Label)
		case r.Magnitude != nil:
			fmt.Fprintf(&b, " |a|=%.2f %s", *r.Magnitude, r.Label)
		}
		fmt.Fprintf(&b, " at %s", r.CreatedAt.Local().Format(time.TimeOnly))
	} else {
		fmt.Fprintf(&b, " %s", u.Value.Status.Message)
	}
	fmt.Println(b.String())
}

func runWatch(cmd *cobra.Command, args []string) error {
	sensor := models.SensorType(watchSensor)
	if sensor != models.SensorTemperature && sensor != models.SensorActivity {
		return fmt.Errorf("unknown sensor %q", watchSensor)
	}
	if email == "" {
		return fmt.Errorf("--email and --password are required to query readings")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, err := newClient(ctx)
	if err != nil {
		return err
	}
	cowIDs, err := parseCowIDs(watchCowIDs)
	if err != nil {
		return err
	}
	if len(cowIDs) == 0 {
		return fmt.Errorf("--cows is required")
	}

	poller := client.NewPoller(fetchSnapshot(c, sensor), render, client.WithInterval[uint, snapshot](pollInterval))
	defer poller.Stop()

	rotate := time.NewTicker(switchAfter)
	defer rotate.Stop()

	for i := 0; ; i++ {
		poller.Watch(ctx, cowIDs[i%len(cowIDs)])
		select {
		case <-ctx.Done():
			return nil
		case <-rotate.C:
		}
	}
}
