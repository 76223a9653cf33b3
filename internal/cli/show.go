package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"skyedit/internal/report"
	"skyedit/internal/savefile"
	"skyedit/internal/session"
)

func (e *env) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the pilot, reputation and ships of a save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			format, err := report.ParseFormat(name)
			if err != nil {
				return err
			}

			s, err := e.open(args[0], true, nil)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), s.Snapshot(), format)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	return cmd
}

// open starts a session on path. history may be nil.
func (e *env) open(path string, checkImages bool, history session.Recorder) (*session.Session, error) {
	opts := session.Options{
		InstallPath: e.cfg.InstallPath,
		CheckImages: checkImages,
		History:     history,
	}

	s, err := session.Open(path, opts)
	if errors.Is(err, savefile.ErrNotFound) {
		return nil, fmt.Errorf("%s: not found", path)
	}
	return s, err
}
