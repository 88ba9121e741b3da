// Package manifest handles minerva.toml runtime configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/minervalang/minerva/object"
)

// Manifest represents a minerva.toml configuration file.
type Manifest struct {
	Runtime  Runtime  `toml:"runtime"`
	Registry Registry `toml:"registry"`

	// Dir is the directory containing the minerva.toml file (set at load time).
	Dir string `toml:"-"`
}

// Runtime configures runtime behavior.
type Runtime struct {
	LogLevel      string `toml:"log-level"`      // "notice", "info" or "debug"
	TraceDispatch bool   `toml:"trace-dispatch"` // log every send at debug level
	Freeze        bool   `toml:"freeze"`         // reject class mutation after Apply
}

// Registry configures the class registry.
type Registry struct {
	Namespace string `toml:"namespace"` // default namespace for class definitions
}

// Load parses a minerva.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "minerva.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Runtime.LogLevel == "" {
		m.Runtime.LogLevel = "info"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a minerva.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "minerva.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Verbosity maps the configured log level to a commonlog verbosity.
func (m *Manifest) Verbosity() int {
	switch m.Runtime.LogLevel {
	case "notice":
		return 0
	case "debug":
		return 2
	default: // "info"
		return 1
	}
}

// Apply configures a runtime from the manifest: dispatch tracing first,
// then the freeze, so a frozen manifest still gets its trace setting.
func (m *Manifest) Apply(rt *object.Runtime) {
	rt.SetTrace(m.Runtime.TraceDispatch)
	if m.Runtime.Freeze {
		rt.Freeze()
	}
}
