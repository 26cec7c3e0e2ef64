package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"liyu1981.xyz/cattle-health-service/pkg/common"
	"liyu1981.xyz/cattle-health-service/pkg/db"
)

var (
	envFile string
	cfg     *common.Config
)

var rootCmd = &cobra.Command{
	Use:   "cattle-health-server",
	Short: "Cattle health monitoring backend",
	Long:  `Receives temperature and activity readings from collar sensors and serves them to the dashboard`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional, real environment variables always win
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}

		var err error
		cfg, err = common.LoadConfig()
		return err
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP (and optional gRPC) server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		dialector, err := db.DialectorFromConfig(cfg.DB)
		if err != nil {
			return err
		}
		dbInstance, err := db.OpenAndMigrate(dialector)
		if err != nil {
			return err
		}
		common.GetLogger().Info("Database migrated")
		return dbInstance.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	defer common.SyncLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		common.SyncLogger()
		os.Exit(1)
	}
}
