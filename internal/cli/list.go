package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"skyedit/internal/saves"
)

func (e *env) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the save files in a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := e.cfg.SaveDir
			if len(args) > 0 {
				dir = args[0]
			}

			entries, err := saves.List(dir)
			if err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No save files in %s\n", dir)
				return nil
			}

			now := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Describe(now))
			}
			return tw.Flush()
		},
	}
}
