package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/equipment-insights/pkg/services/config"
)

func NewProfilesCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the analytics profiles available in the profiles file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := env.Source
			if err := src.resolve(); err != nil {
				return err
			}
			if src.ProfilesPath == "" {
				_, err := fmt.Fprintln(env.Output, "No profiles file configured; using default thresholds")
				return err
			}

			registry, err := config.NewProfileRegistry(src.ProfilesPath)
			if err != nil {
				return err
			}
			profiles, err := registry.GetProfiles(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range profiles {
				if _, err := fmt.Fprintln(env.Output, p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
