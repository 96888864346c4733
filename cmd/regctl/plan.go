package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Clebam/puppetlabs-registry/internal/manifest"
	"github.com/Clebam/puppetlabs-registry/internal/memcatalog"
	"github.com/Clebam/puppetlabs-registry/internal/statefile"
	"github.com/Clebam/puppetlabs-registry/pkg/resource"
)

var (
	planManifest string
	planState    string
)

func init() {
	cmd := newPlanCmd()
	cmd.Flags().StringVarP(&planManifest, "manifest", "m", "", "Declaration manifest (.toml/.yaml)")
	cmd.Flags().StringVarP(&planState, "state", "s", "", "State snapshot of actual values (.toml/.yaml)")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("state")
	rootCmd.AddCommand(cmd)
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan --manifest <file> --state <file>",
		Short: "Plan removal of unmanaged values for purging keys",
		Long: `The plan command loads a declaration manifest and a state snapshot of
the values actually present, then computes, for every key that requests
purge_values, the unmanaged values that would be removed. Nothing is
modified; the output is the removal plan.

Example:
  regctl plan --manifest registry.toml --state state.toml
  regctl plan -m registry.yaml -s state.toml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan()
		},
	}
	return cmd
}

func runPlan() error {
	cat := memcatalog.New()
	loader := manifest.Loader{Log: log}
	if err := loader.LoadFile(planManifest, cat); err != nil {
		return err
	}

	provider, err := statefile.Load(planState)
	if err != nil {
		return err
	}

	keys := cat.Keys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Path.Alias() < keys[j].Path.Alias()
	})

	var removals []*resource.Value
	for _, k := range keys {
		purge, err := resource.Reconcile(k, cat, provider)
		if err != nil {
			return fmt.Errorf("plan %s: %w", k.Ref(), err)
		}
		for _, v := range purge {
			// The engine only computes descriptors; inserting them into
			// the catalog is our job.
			if err := cat.AddResource(v); err != nil {
				return err
			}
		}
		removals = append(removals, purge...)
	}

	if jsonOut {
		paths := make([]string, 0, len(removals))
		for _, v := range removals {
			paths = append(paths, v.Path.String())
		}
		return printJSON(map[string]interface{}{
			"manifest": planManifest,
			"state":    planState,
			"removals": paths,
		})
	}

	if len(removals) == 0 {
		printInfo("nothing to purge\n")
		return nil
	}
	red := color.New(color.FgRed)
	for _, v := range removals {
		printInfo("%s %s\n", red.Sprint("- purge"), v.Path)
	}
	printInfo("%d value(s) would be removed\n", len(removals))
	return nil
}
