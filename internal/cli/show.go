package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proper-build/proper/internal/descriptor"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the descriptor as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a parsed project descriptor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)

		d, err := descriptor.ParseFile(path)
		if err != nil {
			return err
		}

		if showJSON {
			out, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling descriptor: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printSummary(d)
		return nil
	},
}

func printSummary(d *descriptor.Descriptor) {
	fmt.Printf("%s v%s\n", d.Project.Name, d.Project.Version)
	if d.Project.Description != "" {
		fmt.Printf("  %s\n", d.Project.Description)
	}
	if len(d.Project.Authors) > 0 {
		fmt.Printf("  authors: %s\n", strings.Join(d.Project.Authors, ", "))
	}
	if d.Project.License != "" {
		fmt.Printf("  license: %s\n", d.Project.License)
	}

	printConstraints("dependencies", d.Dependencies)
	printConstraints("dev-dependencies", d.DevDependencies)

	if len(d.Tools) > 0 {
		names := make([]string, 0, len(d.Tools))
		for name := range d.Tools {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("\ntool blocks: %s\n", strings.Join(names, ", "))
	}
}

func printConstraints(section string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\n%s:\n", section)
	for _, name := range names {
		fmt.Printf("  %-20s %s\n", name, deps[name])
	}
}
