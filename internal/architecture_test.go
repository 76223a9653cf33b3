package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uiPrefixes are the packages that draw on or read from the terminal
var uiPrefixes = []string{
	"skyedit/internal/tui",
	"skyedit/internal/theme",
	"skyedit/internal/components",
	"skyedit/internal/cli",
	"github.com/rivo/tview",
	"github.com/gdamore/tcell",
}

// TestSavefileImportRestrictions keeps the line store, extractors and
// serializer free of every other layer
func TestSavefileImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"skyedit/internal/log", // Logging only
	}

	checkImports(t, "./savefile", allowedPrefixes, uiPrefixes)
}

// TestSessionImportRestrictions ensures the session never reaches into UI or storage
func TestSessionImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"skyedit/internal/log",
		"skyedit/internal/savefile",
		"skyedit/internal/thumbnail", // Image existence checks
	}

	forbiddenPrefixes := append([]string{
		"skyedit/internal/database", // History comes in through session.Recorder
		"modernc.org/sqlite",
	}, uiPrefixes...)

	checkImports(t, "./session", allowedPrefixes, forbiddenPrefixes)
}

// TestTUIImportRestrictions ensures TUI does not depend on the command line layer
func TestTUIImportRestrictions(t *testing.T) {
	forbiddenPrefixes := []string{
		"skyedit/internal/cli",
		"skyedit/internal/report", // Export belongs to the CLI
	}

	checkImports(t, "./tui", nil, forbiddenPrefixes)
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Check forbidden imports, third-party included
			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			// Only project packages are checked against the allowed list
			if !strings.HasPrefix(importPath, "skyedit/internal") || len(allowedPrefixes) == 0 {
				continue
			}

			allowed := false
			for _, prefix := range allowedPrefixes {
				if strings.HasPrefix(importPath, prefix) {
					allowed = true
					break
				}
			}
			if !allowed {
				t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
