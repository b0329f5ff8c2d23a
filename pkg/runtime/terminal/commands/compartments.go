package commands

import (
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/services/config"
	"github.com/de-tools/tenancy-atlas/pkg/services/identity"
	"github.com/de-tools/tenancy-atlas/pkg/store/oci"
	"github.com/spf13/cobra"
)

type CompartmentsCmd struct {
	configPath string
	profile    string
}

func NewCompartmentsCmd() *cobra.Command {
	cc := &CompartmentsCmd{}
	cmd := &cobra.Command{
		Use:   "compartments",
		Short: "List active compartments of the tenancy, root first",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Path to the OCI config file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "OCI config profile to use")

	return cmd
}

func (cc *CompartmentsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	provider := config.NewConfigurationProvider(cc.configPath, cc.profile)
	store, err := oci.NewIdentityStore(provider)
	if err != nil {
		return err
	}

	compartments, err := identity.NewExplorer(store).ListCompartments(ctx)
	if err != nil {
		return err
	}

	for _, compartment := range compartments {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", compartment.Name, compartment.ID)
	}

	return nil
}
