package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skyedit/internal/config"
	"skyedit/internal/database"
	"skyedit/internal/log"
)

// Version information set by main
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// env carries the configuration shared by every subcommand
type env struct {
	v   *viper.Viper
	cfg config.Config
}

// NewRootCmd builds the skyedit command tree with its own viper instance
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}

	root := &cobra.Command{
		Use:   "skyedit",
		Short: "Edit Endless Sky pilot save files",
		Long: `skyedit reads an Endless Sky save file, shows the pilot, location,
reputation and ship data it holds, and writes edits back without touching
any other line of the file.

Run without a subcommand to start the interactive editor.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI(cmd, args)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/skyedit/config.toml)")
	flags.String("install-path", "", "Endless Sky installation folder, used for ship images")
	flags.String("save-dir", "", "folder holding the save files")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("history-db", "", "history database file")

	bind := map[string]string{
		"install_path": "install-path",
		"save_dir":     "save-dir",
		"log_level":    "log-level",
		"history_db":   "history-db",
	}
	for key, flag := range bind {
		_ = e.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		e.tuiCmd(),
		e.listCmd(),
		e.showCmd(),
		e.setCmd(),
		e.configCmd(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// load reads config file, environment and flags into e.cfg
func (e *env) load(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(e.v, cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(e.v)
	if err != nil {
		return err
	}
	e.cfg = cfg

	log.SetLevel(cfg.LogLevel)
	log.Debug("configuration loaded", "config", e.v.ConfigFileUsed(), "save_dir", cfg.SaveDir,
		"install_path", cfg.InstallPath)
	return nil
}

// openHistory opens the history database. Failures are logged and disable
// history instead of failing the command.
func (e *env) openHistory() *database.SQLiteDatabase {
	path := e.cfg.HistoryDB
	if path == "" {
		return nil
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Warn("failed to create history folder", "path", path, "error", err)
			return nil
		}
	}

	db := database.NewDatabase()
	if err := db.OpenDatabase(path); err != nil {
		log.Warn("history disabled", "path", path, "error", err)
		return nil
	}
	return db
}
