package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cradlekit/cradle/internal/profile"
	"github.com/cradlekit/cradle/server"
	"github.com/cradlekit/cradle/store"
	"github.com/cradlekit/cradle/store/db"
)

const greetingBanner = `
cradle - baby care tracking backend
`

var rootCmd = &cobra.Command{
	Use:   "cradle",
	Short: "A baby-care tracking service with an LLM-backed assistant",
	Run: func(_ *cobra.Command, _ []string) {
		instanceProfile := &profile.Profile{
			Mode:        viper.GetString("mode"),
			Addr:        viper.GetString("addr"),
			Port:        viper.GetInt("port"),
			Data:        viper.GetString("data"),
			Driver:      viper.GetString("driver"),
			DSN:         viper.GetString("dsn"),
			Secret:      viper.GetString("secret"),
			InstanceURL: viper.GetString("instance-url"),
			Version:     "0.1.0",
		}
		instanceProfile.FromEnv()
		if err := instanceProfile.Validate(); err != nil {
			slog.Error("invalid configuration", slog.String("error", err.Error()))
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		dbDriver, err := db.NewDBDriver(instanceProfile)
		if err != nil {
			slog.Error("failed to create db driver", slog.String("error", err.Error()))
			return
		}

		storeInstance := store.New(dbDriver, instanceProfile)
		if err := storeInstance.Migrate(ctx); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			return
		}

		s, err := server.NewServer(ctx, instanceProfile, storeInstance)
		if err != nil {
			slog.Error("failed to create server", slog.String("error", err.Error()))
			return
		}

		if err := s.Start(ctx); err != nil {
			slog.Error("failed to start server", slog.String("error", err.Error()))
			return
		}

		fmt.Print(greetingBanner)
		fmt.Printf("version %s has been started on port %d\n", instanceProfile.Version, instanceProfile.Port)

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		s.Shutdown(ctx)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("failed to run command", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("cradle")

	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the server")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", "database driver")
	rootCmd.PersistentFlags().String("dsn", "", "database source name (aka. DSN)")
	rootCmd.PersistentFlags().String("secret", "", "secret used to sign access tokens")
	rootCmd.PersistentFlags().String("instance-url", "", "the url of your cradle instance")

	for _, flag := range []string{"mode", "addr", "port", "data", "driver", "dsn", "secret", "instance-url"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
