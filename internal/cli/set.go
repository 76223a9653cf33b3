package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skyedit/internal/savefile"
	"skyedit/internal/session"
)

var errFieldMissing = errors.New("field not present in save file")

func (e *env) setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file>",
		Short: "Edit a save file without the interactive editor",
		Long: `Edit pilot, location and reputation values of a save file and write the
result back. Only fields already present in the file can be changed.

  skyedit set "Jane Doe.txt" --planet "New Boston" --rep "Merchants=75"`,
		Args: cobra.ExactArgs(1),
		RunE: e.runSet,
	}

	cmd.Flags().String("pilot", "", "pilot name")
	cmd.Flags().String("date", "", "in-game date")
	cmd.Flags().String("system", "", "current system")
	cmd.Flags().String("planet", "", "current planet")
	cmd.Flags().StringArray("rep", nil, `reputation as "Faction=Value", repeatable`)
	cmd.Flags().Bool("dry-run", false, "report what would change without writing")
	return cmd
}

func (e *env) runSet(cmd *cobra.Command, args []string) error {
	var history session.Recorder
	if db := e.openHistory(); db != nil {
		defer db.CloseDatabase()
		history = db
	}

	s, err := e.open(args[0], false, history)
	if err != nil {
		return err
	}

	if err := applyPilotFlags(cmd, s); err != nil {
		return err
	}

	reps, _ := cmd.Flags().GetStringArray("rep")
	for _, rep := range reps {
		faction, value, err := parseRep(rep)
		if err != nil {
			return err
		}
		entry, ok := s.FindFaction(faction)
		if !ok {
			return fmt.Errorf("faction %q: %w", faction, errFieldMissing)
		}
		if err := s.SetReputation(entry.Line, faction, value); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	edited := savefile.Apply(s.Document(), s.Edits())
	changed := s.Document().Changed(edited)
	if len(changed) == 0 {
		fmt.Fprintln(out, "No changes")
		return nil
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for _, line := range changed {
			fmt.Fprintf(out, "line %d: %s\n", line+1, edited.Text(line))
		}
		return nil
	}

	if err := s.Save(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s (%d lines changed)\n", s.Path(), len(changed))
	return nil
}

// applyPilotFlags copies the pilot flags that were given onto the session
func applyPilotFlags(cmd *cobra.Command, s *session.Session) error {
	p := s.Pilot()
	fields := []struct {
		flag    string
		present bool
		target  *string
	}{
		{"pilot", p.HasName, &p.Name},
		{"date", p.HasDate, &p.Date},
		{"system", p.HasSystem, &p.System},
		{"planet", p.HasPlanet, &p.Planet},
	}

	for _, field := range fields {
		if !cmd.Flags().Changed(field.flag) {
			continue
		}
		if !field.present {
			return fmt.Errorf("%s: %w", field.flag, errFieldMissing)
		}
		*field.target, _ = cmd.Flags().GetString(field.flag)
	}

	s.SetPilot(p)
	return nil
}

// parseRep splits "Faction=Value"; the value follows the last '='
func parseRep(rep string) (string, int, error) {
	i := strings.LastIndex(rep, "=")
	if i <= 0 {
		return "", 0, fmt.Errorf("invalid --rep %q, want \"Faction=Value\"", rep)
	}

	faction := strings.TrimSpace(rep[:i])
	value, err := strconv.Atoi(strings.TrimSpace(rep[i+1:]))
	if faction == "" || err != nil {
		return "", 0, fmt.Errorf("invalid --rep %q, want \"Faction=Value\"", rep)
	}
	return faction, value, nil
}
