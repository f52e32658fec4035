// Package project detects a project's type from its manifest and
// lockfile markers, mapping it to a selection policy key.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hookman/hookman/internal/selection"
)

// packageJSON is the subset of package.json needed for detection.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      any               `json:"workspaces"`
}

// pnpmWorkspace is the subset of pnpm-workspace.yaml needed for detection.
type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// apiFrameworks are dependencies that mark a project as an API service.
var apiFrameworks = []string{"express", "fastify", "koa", "@nestjs/core", "hono"}

// Detect inspects manifest files at path and returns the matching
// policy key. Any read or parse failure yields "default".
func Detect(path string) string {
	if pkg, ok := readPackageJSON(path); ok {
		deps := map[string]bool{}
		for d := range pkg.Dependencies {
			deps[d] = true
		}
		for d := range pkg.DevDependencies {
			deps[d] = true
		}

		switch {
		case pkg.Workspaces != nil || hasPnpmWorkspace(path) || exists(path, "lerna.json"):
			return "monorepo"
		case deps["react"]:
			return "react"
		case hasAny(deps, apiFrameworks):
			return "api"
		case deps["typescript"] || exists(path, "tsconfig.json"):
			return "typescript"
		default:
			return "node"
		}
	}

	if hasPnpmWorkspace(path) {
		return "monorepo"
	}

	if isPython(path) {
		return "python"
	}

	return selection.DefaultProjectType
}

func readPackageJSON(path string) (packageJSON, bool) {
	data, err := os.ReadFile(filepath.Join(path, "package.json"))
	if err != nil {
		return packageJSON{}, false
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return packageJSON{}, false
	}
	return pkg, true
}

// hasPnpmWorkspace reports whether a parseable pnpm-workspace.yaml
// declaring packages is present.
func hasPnpmWorkspace(path string) bool {
	data, err := os.ReadFile(filepath.Join(path, "pnpm-workspace.yaml"))
	if err != nil {
		return false
	}
	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return false
	}
	return len(ws.Packages) > 0
}

// isPython checks for Python project markers. A pyproject.toml counts
// only when it parses.
func isPython(path string) bool {
	if data, err := os.ReadFile(filepath.Join(path, "pyproject.toml")); err == nil {
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err == nil {
			return true
		}
		return false
	}
	return exists(path, "requirements.txt") || exists(path, "setup.py") || exists(path, "Pipfile")
}

func hasAny(deps map[string]bool, names []string) bool {
	for _, n := range names {
		if deps[n] {
			return true
		}
	}
	return false
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
