package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeDoe = "pilot Jane Doe\n" +
	"date 2024-01-01\n" +
	"system Sol\n" +
	"planet \"Earth\"\n" +
	"\"reputation with\"\n" +
	"\t\"Merchants\" 50\n" +
	"\t\"Pirates\" -20\n"

// run executes the command tree with an isolated config and history file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("history_db = \""+filepath.ToSlash(filepath.Join(dir, "history.db"))+"\"\n"), 0o644))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeSave(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Jane Doe.txt")
	require.NoError(t, os.WriteFile(path, []byte(janeDoe), 0o644))
	return path
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	tests := []string{"tui", "list", "show", "set", "config"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}
}

func TestShowCmd_JSON(t *testing.T) {
	path := writeSave(t)
	out, err := run(t, "show", path, "--format", "json")
	require.NoError(t, err)

	var snap struct {
		Pilot struct {
			Name   string `json:"name"`
			Planet string `json:"planet"`
		} `json:"pilot"`
		Reputation []struct {
			Faction string `json:"faction"`
			Value   int    `json:"value"`
		} `json:"reputation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "Jane Doe", snap.Pilot.Name)
	assert.Equal(t, "Earth", snap.Pilot.Planet)
	require.Len(t, snap.Reputation, 2)
	assert.Equal(t, -20, snap.Reputation[1].Value)
}

func TestShowCmd_NotFound(t *testing.T) {
	_, err := run(t, "show", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestShowCmd_BadFormat(t *testing.T) {
	_, err := run(t, "show", writeSave(t), "--format", "xml")
	assert.Error(t, err)
}

func TestSetCmd(t *testing.T) {
	path := writeSave(t)
	out, err := run(t, "set", path, "--planet", "New Boston", "--rep", "Pirates=5")
	require.NoError(t, err)
	assert.Contains(t, out, "2 lines changed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pilot Jane Doe\n"+
		"date 2024-01-01\n"+
		"system Sol\n"+
		"planet \"New Boston\"\n"+
		"\"reputation with\"\n"+
		"\t\"Merchants\" 50\n"+
		"\t\"Pirates\" 5\n", string(data))
}

func TestSetCmd_DryRun(t *testing.T) {
	path := writeSave(t)
	out, err := run(t, "set", path, "--rep", "Merchants=-1", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "line 6: \t\"Merchants\" -1\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, janeDoe, string(data))
}

func TestSetCmd_NoChanges(t *testing.T) {
	out, err := run(t, "set", writeSave(t), "--system", "Sol")
	require.NoError(t, err)
	assert.Equal(t, "No changes\n", out)
}

func TestSetCmd_UnknownFaction(t *testing.T) {
	_, err := run(t, "set", writeSave(t), "--rep", "Hai=10")
	assert.ErrorIs(t, err, errFieldMissing)
}

func TestParseRep(t *testing.T) {
	tests := []struct {
		in      string
		faction string
		value   int
		wantErr bool
	}{
		{"Merchants=75", "Merchants", 75, false},
		{"Free Worlds = -3", "Free Worlds", -3, false},
		{"=5", "", 0, true},
		{"Merchants", "", 0, true},
		{"Merchants=high", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			faction, value, err := parseRep(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.faction, faction)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestListCmd(t *testing.T) {
	path := writeSave(t)
	out, err := run(t, "list", filepath.Dir(path))
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe.txt")
}

func TestConfigInitCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "skyedit", "config.toml")
	out, err := run(t, "config", "init", target, "--install-path", "/games/endless-sky")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/games/endless-sky")

	_, err = run(t, "config", "init", target)
	assert.Error(t, err, "existing file is kept without --force")
}
