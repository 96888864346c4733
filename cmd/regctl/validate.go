package main

import (
	"github.com/spf13/cobra"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

var validateValuePaths bool

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateValuePaths, "value", false, "Validate as key+value paths")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Check registry paths against the grammar",
		Long: `The validate command checks each path against the registry path grammar
and reports the first invalid one. With --value, paths are checked as
combined key+value paths (the last element names a value).

Example:
  regctl validate 'HKLM\Software\Vendor'
  regctl validate '32:HKLM\Software' 'HKCR\.txt'
  regctl validate --value 'HKLM\Software\Vendor\Version'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	for _, raw := range args {
		var err error
		if validateValuePaths {
			_, err = regpath.ParseValuePath(raw)
		} else {
			_, err = regpath.Parse(raw)
		}
		if err != nil {
			return err
		}
		printInfo("ok: %s\n", raw)
	}
	return nil
}
