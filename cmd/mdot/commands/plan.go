package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NexushasTaken/mdot/pkg/config"
	"github.com/NexushasTaken/mdot/pkg/paths"
	"github.com/NexushasTaken/mdot/pkg/resolver"
)

func newPlanCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "plan [files...]",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.New(), args)
			if err != nil {
				return err
			}

			opts := resolver.Options{Strict: cfg.Strict}
			if cmd.Flags().Changed("strict") {
				opts.Strict = strict
			}

			plan, err := resolver.Resolve(cfg.Entries, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range plan.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}
