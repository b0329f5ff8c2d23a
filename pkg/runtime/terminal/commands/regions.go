package commands

import (
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/services/config"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"
	"github.com/de-tools/tenancy-atlas/pkg/store/oci"
	"github.com/spf13/cobra"
)

type RegionsCmd struct {
	configPath string
	profile    string
}

func NewRegionsCmd() *cobra.Command {
	rc := &RegionsCmd{}
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions the tenancy is subscribed to",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the OCI config file")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "OCI config profile to use")

	return cmd
}

func (rc *RegionsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider := config.NewConfigurationProvider(rc.configPath, rc.profile)
	store, err := oci.NewIdentityStore(provider)
	if err != nil {
		return err
	}

	regions, err := identity.NewExplorer(store).ListSubscribedRegions(ctx)
	if err != nil {
		return err
	}

	for _, region := range regions {
		marker := ""
		if region.HomeRegion {
			marker = " (home)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", region.Name, marker)
	}

	return nil
}
