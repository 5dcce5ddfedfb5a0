package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tradepoint/oms/internal/catalog"
	"github.com/tradepoint/oms/internal/directory"
	"github.com/tradepoint/oms/internal/identity"
	"github.com/tradepoint/oms/internal/order"
	"github.com/tradepoint/oms/internal/ui"
	"github.com/tradepoint/oms/pkg/events"
	"github.com/tradepoint/oms/pkg/logger"
	"github.com/tradepoint/oms/pkg/textstore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oms",
		Short: "Console order management system",
		Long:  "Menu-driven order, catalog and customer management over flat-file storage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().String("data-dir", "data", "directory holding the flat-file collections")
	cmd.Flags().String("log-file", "oms.log", "log file path (empty disables the file sink)")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().Bool("development", false, "pretty-print logs for development")

	viper.SetEnvPrefix("OMS")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.Flags())

	return cmd
}

func run() error {
	logger.Init(logger.Config{
		ServiceName:   "oms",
		Level:         viper.GetString("log-level"),
		FilePath:      viper.GetString("log-file"),
		IsDevelopment: viper.GetBool("development"),
	})

	store, err := textstore.Open(textstore.Config{DataDir: viper.GetString("data-dir")})
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}

	bus := events.NewBus()
	if err := bus.SubscribeAuditLog(); err != nil {
		return fmt.Errorf("failed to attach audit log: %w", err)
	}

	identitySvc, err := identity.InitializeService(store)
	if err != nil {
		return fmt.Errorf("failed to initialize identity service: %w", err)
	}
	catalogSvc, err := catalog.InitializeService(store, bus)
	if err != nil {
		return fmt.Errorf("failed to initialize catalog service: %w", err)
	}
	directorySvc, err := directory.InitializeService(store)
	if err != nil {
		return fmt.Errorf("failed to initialize directory service: %w", err)
	}
	orderSvc, err := order.InitializeService(store, bus, catalogSvc.Repo, directorySvc.Repo, identitySvc.Session)
	if err != nil {
		return fmt.Errorf("failed to initialize order service: %w", err)
	}

	logger.Info().
		Str("data_dir", store.DataDir()).
		Msg("Order management system starting")

	console := ui.NewConsole(os.Stdin, os.Stdout, identitySvc, catalogSvc, directorySvc, orderSvc)
	console.Run()

	logger.Info().Msg("Order management system stopped")
	return nil
}
