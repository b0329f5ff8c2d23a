package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/tenancy-atlas/pkg/server"
	"github.com/de-tools/tenancy-atlas/pkg/services/config"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"
	"github.com/de-tools/tenancy-atlas/pkg/services/inventory"
	"github.com/de-tools/tenancy-atlas/pkg/store/oci"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	profile string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Tenancy Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigPath(),
		"Path to the OCI config file (default is $HOME/.oci/config)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "DEFAULT",
		"Profile to use from the OCI config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	provider := config.NewConfigurationProvider(cfgPath, profile)

	identityStore, err := oci.NewIdentityStore(provider)
	if err != nil {
		return fmt.Errorf("failed to create identity store: %w", err)
	}

	explorer := identity.NewExplorer(identityStore)
	collector := inventory.NewCollector(oci.NewExplorer(provider))

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Found the following profiles:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, name := range profiles {
		logger.Info().Msgf("Name: `%s`", name)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Explorer:  explorer,
			Collector: collector,
		},
	})

	return api.Start()
}
