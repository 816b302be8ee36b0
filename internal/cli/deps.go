package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/constraint"
	"github.com/proper-build/proper/internal/descriptor"
	"github.com/proper-build/proper/internal/output"
)

var depsFile string

func init() {
	depsCheckCmd.Flags().StringVarP(&depsFile, "file", "f", "", "Descriptor path (default: configured or ./project.toml)")
	depsCmd.AddCommand(depsCheckCmd)
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Inspect dependency constraints",
}

var depsCheckCmd = &cobra.Command{
	Use:   "check <package> <version>",
	Short: "Check a version against the declared constraint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pkg, version := args[0], args[1]

		var pathArgs []string
		if depsFile != "" {
			pathArgs = []string{depsFile}
		}
		path := resolveDescriptorPath(pathArgs)

		d, err := descriptor.ParseFile(path)
		if err != nil {
			return err
		}

		expr, ok := d.Constraint(pkg)
		if !ok {
			return fmt.Errorf("no constraint declared for %q in %s", pkg, path)
		}

		c, err := constraint.Parse(expr)
		if err != nil {
			return fmt.Errorf("constraint for %q: %w", pkg, err)
		}

		satisfied, err := c.Check(version)
		if err != nil {
			return err
		}
		if !satisfied {
			return fmt.Errorf("%s %s does not satisfy %s", pkg, version, expr)
		}

		output.Success(fmt.Sprintf("%s %s satisfies %s", pkg, version, expr))
		return nil
	},
}
