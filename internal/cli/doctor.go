package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/config"
	"github.com/proper-build/proper/internal/descriptor"
	"github.com/proper-build/proper/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the descriptor and external tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDescriptorCheck()
		runToolCheck()
		runConfigCheck()
		return nil
	},
}

func runDescriptorCheck() {
	path := resolveDescriptorPath(nil)
	fmt.Printf("Descriptor check: %s\n", path)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  [MISS] %s not found\n", path)
		return
	}

	result, err := descriptor.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return
	}
	if !result.Valid {
		fmt.Printf("  [FAIL] %d validation violation(s); run `validate` for details\n", len(result.Violations))
		return
	}

	d, err := descriptor.ParseFile(path)
	if err != nil {
		fmt.Printf("  [ OK ] valid descriptor\n")
		return
	}
	fmt.Printf("  [ OK ] valid descriptor: %s v%s\n", d.Project.Name, d.Project.Version)
}

func runToolCheck() {
	fmt.Println("External tools:")
	for _, tool := range []toolchain.Tool{toolchain.Formatter, toolchain.Sorter} {
		bin, err := tool.Resolve(config.ToolBin(tool.Name))
		if err != nil {
			fmt.Printf("  [MISS] %s not found\n", tool.Name)
			continue
		}
		fmt.Printf("  [ OK ] %s found at %s\n", tool.Name, bin)
	}
}

func runConfigCheck() {
	fmt.Println("User config:")
	configFile := config.FilePath()
	if _, err := os.Stat(configFile); err != nil {
		fmt.Printf("  [INFO] no config file at %s (defaults in effect)\n", configFile)
		return
	}
	fmt.Printf("  [ OK ] %s\n", configFile)
}
