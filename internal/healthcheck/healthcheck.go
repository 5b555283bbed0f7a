package healthcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/l3aro/go-langsurvey/internal/config"
	"github.com/l3aro/go-langsurvey/internal/scanner"
	"github.com/l3aro/go-langsurvey/pkg/language"
	"github.com/l3aro/go-langsurvey/pkg/survey"
)

// RootStatus represents the outcome of a trial survey of a directory.
type RootStatus struct {
	Path      string
	Status    string // "ok" or "error"
	Files     int
	Languages int
	Error     string
}

// HealthCheckResult contains the full health check output for display.
type HealthCheckResult struct {
	ConfigPath  string // empty when running on defaults
	ConfigScope string // "global", "project", "custom" or "defaults"
	Format      string
	Languages   int
	Extensions  int
	Shadowed    []language.Shadow
	Root        *RootStatus // nil unless a root was given
}

// Check inspects the configuration and the language table, and when root is
// non-empty, surveys it once to confirm it can be walked.
func Check(cfg *config.Config, configPath string, table *language.Table, root string) (*HealthCheckResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if table == nil {
		return nil, fmt.Errorf("language table is nil")
	}

	result := &HealthCheckResult{
		ConfigPath:  configPath,
		ConfigScope: scopeFromPath(configPath),
		Format:      cfg.Format,
		Languages:   table.Len(),
		Shadowed:    table.Shadowed(),
	}
	for _, e := range table.Entries() {
		result.Extensions += len(e.Extensions)
	}

	if root != "" {
		result.Root = checkRoot(cfg, table, root)
	}

	return result, nil
}

// HasError reports whether any check failed.
func (r *HealthCheckResult) HasError() bool {
	return r.Root != nil && r.Root.Status == "error"
}

func checkRoot(cfg *config.Config, table *language.Table, root string) *RootStatus {
	status := &RootStatus{Path: root}

	s := survey.New(table, survey.WithScannerOptions(scanner.Options{
		FollowSymlinks: cfg.FollowSymlinks,
	}))
	res, err := s.Report(root)
	if err != nil {
		status.Status = "error"
		status.Error = err.Error()
		return status
	}

	status.Status = "ok"
	status.Files = res.Files
	status.Languages = len(res.Languages)
	return status
}

// scopeFromPath determines "global", "project" or "custom" scope from a
// config file path.
func scopeFromPath(path string) string {
	if path == "" {
		return "defaults"
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalDir := filepath.Join(home, config.DirName)
		if strings.HasPrefix(path, globalDir) {
			return "global"
		}
	}

	if filepath.Base(filepath.Dir(path)) == config.DirName {
		return "project"
	}
	return "custom"
}
