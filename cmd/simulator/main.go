package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"liyu1981.xyz/cattle-health-service/pkg/client"
)

var (
	httpHostPort string
	email        string
	password     string
)

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var rootCmd = &cobra.Command{
	Use:   "simulator",
	Short: "Fake collar sensors and a terminal dashboard for the cattle health API",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpHostPort, "http", "127.0.0.1:1080", "HTTP host:port of the server")
	rootCmd.PersistentFlags().StringVar(&email, "email", "", "dashboard account email")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "dashboard account password")
	rootCmd.AddCommand(pushCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient(ctx context.Context) (*client.Client, error) {
	c := client.New("http://" + httpHostPort)
	if email == "" {
		return c, nil
	}
	if _, err := c.Login(ctx, email, password); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return c, nil
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}
