package commands

import (
	"fmt"

	"github.com/de-tools/tenancy-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List profiles found in the OCI config file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", config.DefaultConfigPath(),
		"Path to the OCI config file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(pc.configPath)
	if err != nil {
		return err
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.configPath)
		return nil
	}

	for _, profile := range profiles {
		fmt.Fprintln(cmd.OutOrStdout(), profile)
	}

	return nil
}
