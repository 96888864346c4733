package main

import (
	"github.com/spf13/cobra"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

func init() {
	rootCmd.AddCommand(newCanonCmd())
}

func newCanonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <path>",
		Short: "Print the canonical form of a registry key path",
		Long: `The canon command parses a registry key path and prints its canonical
form, its case-folded alias, and the hive and bit width it resolves to.

Example:
  regctl canon 'hkey_local_machine\SOFTWARE\Vendor'
  regctl canon '32:hklm\Software' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(args[0])
		},
	}
	return cmd
}

func runCanon(raw string) error {
	k, err := regpath.Parse(raw)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"input":     raw,
			"canonical": k.Canonical(),
			"alias":     k.Alias(),
			"hive":      k.Hive().String(),
			"bit_width": k.BitWidth().String(),
			"segments":  k.Segments(),
		})
	}

	printInfo("canonical: %s\n", k.Canonical())
	printInfo("alias:     %s\n", k.Alias())
	printInfo("hive:      %s\n", k.Hive())
	printInfo("bit width: %s\n", k.BitWidth())
	return nil
}
