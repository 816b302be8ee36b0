package cli

import (
	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/branding"
	"github.com/proper-build/proper/internal/config"
	"github.com/proper-build/proper/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` loads a project packaging descriptor, validates its metadata and
dependency version constraints, and drives the external formatting and
import-sorting tools configured by its tool blocks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		output.SetVerbose(verbose)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		output.Error(err.Error())
	}
	return err
}

// resolveDescriptorPath picks the descriptor path: an explicit argument
// wins, then the user config, then the default filename in the working
// directory.
func resolveDescriptorPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if p := config.Get(config.KeyDescriptor); p != "" {
		return p
	}
	return branding.DescriptorFile()
}
