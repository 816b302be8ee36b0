package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/config"
	"github.com/proper-build/proper/internal/descriptor"
	"github.com/proper-build/proper/internal/output"
	"github.com/proper-build/proper/internal/toolchain"
)

var (
	fmtCheck    bool
	fmtSkipSort bool
)

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report what would change without writing files")
	fmtCmd.Flags().BoolVar(&fmtSkipSort, "skip-sort", false, "Run only the formatting engine")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path]",
	Short: "Run the configured formatting tools",
	Long: `Invoke the formatting engine, then the import-sorting engine, with flags
derived from their descriptor tool blocks. The tools themselves are external
binaries; their option blocks are passed through without interpretation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)

		d, err := descriptor.ParseFile(path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(path)

		if err := runTool(toolchain.Formatter, d, dir, fmtCheck, "--check"); err != nil {
			return err
		}
		if fmtSkipSort {
			return nil
		}
		return runTool(toolchain.Sorter, d, dir, fmtCheck, "--check-only")
	},
}

// runTool builds the argument list from the tool's descriptor block and
// executes it against the descriptor's directory.
func runTool(tool toolchain.Tool, d *descriptor.Descriptor, dir string, check bool, checkFlag string) error {
	bin, err := tool.Resolve(config.ToolBin(tool.Name))
	if err != nil {
		return err
	}

	args := tool.BuildArgs(d.Tool(tool.Name), func(opt string) {
		output.Warn(fmt.Sprintf("unknown %s option %q passed through", tool.Name, opt))
	})
	if check {
		args = append(args, checkFlag)
	}
	args = append(args, ".")

	output.Verbose(fmt.Sprintf("running %s %v", bin, args))
	if err := toolchain.Run(bin, args, dir, os.Stdout); err != nil {
		return fmt.Errorf("%s: %w", tool.Name, err)
	}
	output.Success(tool.Name + " finished")
	return nil
}
