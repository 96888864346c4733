package main

import (
	"github.com/spf13/cobra"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

func init() {
	rootCmd.AddCommand(newAscendCmd())
}

func newAscendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ascend <path>",
		Short: "Print a key's ancestor chain, nearest parent first",
		Long: `The ascend command parses a registry key path and prints every ancestor
key up to the hive root, nearest parent first. The key itself is not part
of the chain.

Example:
  regctl ascend 'HKLM\Software\Vendor\App'
  regctl ascend '32:HKLM\Software\Vendor' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAscend(args[0])
		},
	}
	return cmd
}

func runAscend(raw string) error {
	k, err := regpath.Parse(raw)
	if err != nil {
		return err
	}

	chain := k.Ascend()
	if jsonOut {
		paths := make([]string, 0, len(chain))
		for _, ancestor := range chain {
			paths = append(paths, ancestor.Canonical())
		}
		return printJSON(map[string]interface{}{
			"key":       k.Canonical(),
			"ancestors": paths,
		})
	}

	for _, ancestor := range chain {
		printInfo("%s\n", ancestor.Canonical())
	}
	return nil
}
