package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/descriptor"
	"github.com/proper-build/proper/internal/output"
)

var validateQuiet bool

func init() {
	validateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Suppress output, report via exit code only")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a project descriptor",
	Long: `Check a project descriptor against the descriptor schema and the semantic
rules: required metadata, semantic-version grammar, and dependency constraint
satisfiability.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)

		result, err := descriptor.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if result.Valid {
			if !validateQuiet {
				if d, err := descriptor.ParseFile(path); err == nil {
					output.Success(fmt.Sprintf("%s is valid: %s v%s", path, d.Project.Name, d.Project.Version))
				} else {
					output.Success(path + " is valid")
				}
			}
			return nil
		}

		if !validateQuiet {
			output.Error(fmt.Sprintf("%s has %d violation(s)", path, len(result.Violations)))
			for _, v := range result.Violations {
				switch {
				case v.Path != "" && v.Value != "":
					output.Step(fmt.Sprintf("%s (%q): %s", v.Path, v.Value, v.Message))
				case v.Path != "":
					output.Step(fmt.Sprintf("%s: %s", v.Path, v.Message))
				default:
					output.Step(v.Message)
				}
			}
		}
		return fmt.Errorf("%s: %d validation violation(s)", path, len(result.Violations))
	},
}
