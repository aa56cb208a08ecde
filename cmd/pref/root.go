package pref

import (
	"github.com/prefkit/prefkit/cmd/util"
	"github.com/prefkit/prefkit/lib/store"
	"github.com/spf13/cobra"
)

var (
	prefStore store.Store

	// PreferenceCommands represents the preference command group
	PreferenceCommands = &cobra.Command{
		Use:               "pref",
		Short:             "Read and modify typed preferences",
		PersistentPreRunE: setupStore,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add the common store flags to the preference command group
	util.SetupStoreFlags(PreferenceCommands)

	// Add subcommands
	PreferenceCommands.AddCommand(getCmd)
	PreferenceCommands.AddCommand(setCmd)
	PreferenceCommands.AddCommand(hasCmd)
	PreferenceCommands.AddCommand(delCmd)
	PreferenceCommands.AddCommand(defaultCmd)
	PreferenceCommands.AddCommand(incrCmd)
	PreferenceCommands.AddCommand(decrCmd)
	PreferenceCommands.AddCommand(addCmd)
	PreferenceCommands.AddCommand(toggleCmd)
	PreferenceCommands.AddCommand(sumCmd)
	PreferenceCommands.AddCommand(benchCmd)
}

// setupStore opens the configured preference store
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	s, err := util.OpenStore()
	if err != nil {
		return err
	}
	prefStore = s
	return nil
}
