package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"skyedit/internal/log"
	"skyedit/internal/thumbnail"
	"skyedit/internal/tui"
)

func (e *env) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Start the interactive editor",
		Long: `Start the interactive editor on the save folder. When a file is given
it is opened straight away.`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runTUI,
	}
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func (e *env) runTUI(_ *cobra.Command, args []string) error {
	if !isTerminal() {
		return fmt.Errorf("skyedit tui requires a TTY (terminal)")
	}

	// The screen belongs to tview from here on
	if err := log.SetFileOutput(e.cfg.LogFile); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	proto, err := thumbnail.ParseProtocol(e.cfg.Images)
	if err != nil {
		log.Warn("image previews disabled", "error", err)
		proto = thumbnail.ProtocolNone
	}

	opts := tui.Options{Config: e.cfg, Protocol: proto}
	if db := e.openHistory(); db != nil {
		defer db.CloseDatabase()
		opts.History = db
	}

	var initial string
	if len(args) > 0 {
		initial = args[0]
	}

	log.Info("starting editor", "version", Version, "save_dir", e.cfg.SaveDir, "images", proto.String())
	return tui.NewApplication(opts).Run(initial)
}
