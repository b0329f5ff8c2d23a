package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/tenancy-atlas/pkg/export/xlsx"
	"github.com/de-tools/tenancy-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/tenancy-atlas/pkg/services/config"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"
	"github.com/de-tools/tenancy-atlas/pkg/services/inventory"
	"github.com/de-tools/tenancy-atlas/pkg/store/oci"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type CollectCmd struct {
	settingsPath string
	configPath   string
	profile      string
	regions      []string
	output       string
	reporter     *export.Reporter
}

func NewCollectCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CollectCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collect tenancy inventory and export it to a spreadsheet",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.settingsPath, "settings", "", "Path to the settings file")
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the OCI config file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "OCI config profile to use")
	cmd.Flags().StringSliceVar(&cc.regions, "regions", nil,
		"Regions to collect (default: all subscribed regions)")
	cmd.Flags().StringVar(&cc.output, "output", "", "Output spreadsheet path")

	return cmd
}

func (cc *CollectCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(cc.settingsPath)
	if err != nil {
		return err
	}
	if cc.configPath != "" {
		settings.ConfigPath = cc.configPath
	}
	if cc.profile != "" {
		settings.Profile = cc.profile
	}
	if len(cc.regions) > 0 {
		settings.Regions = cc.regions
	}
	if cc.output != "" {
		settings.OutputFile = cc.output
	}

	provider := config.NewConfigurationProvider(settings.ConfigPath, settings.Profile)
	identityStore, err := oci.NewIdentityStore(provider)
	if err != nil {
		return err
	}
	explorer := identity.NewExplorer(identityStore)

	regions := settings.Regions
	if len(regions) == 0 {
		subscribed, err := explorer.ListSubscribedRegions(ctx)
		if err != nil {
			return err
		}
		for _, region := range subscribed {
			regions = append(regions, region.Name)
		}
	}

	compartments, err := explorer.ListCompartments(ctx)
	if err != nil {
		return err
	}

	collector := inventory.NewCollector(oci.NewExplorer(provider))
	inv, err := collector.Collect(ctx, regions, compartments)
	if err != nil {
		return err
	}

	if err := xlsx.NewWriter().Write(settings.OutputFile, xlsx.InventorySheets(inv)); err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}

	return cc.reporter.Handle(inv, settings.OutputFile)
}
