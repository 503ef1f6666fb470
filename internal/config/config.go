// Package config reads the demo's drift.yaml.
//
// The app section is the one the drift CLI reads when it builds the app; the
// CLI also reads an engine section, which the app itself ignores. The freeze
// section tunes the demo screen. The file is embedded in
// the binary, so Resolve works on bytes rather than a directory.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/freezedemo/internal/workload"
)

const (
	// DefaultTitle is shown above the controls when freeze.title is unset.
	DefaultTitle = "Freeze Test for Fire OS"
	// DefaultInterval is the counter period when freeze.interval is unset.
	DefaultInterval = time.Second
)

var (
	// ErrInvalidInterval is returned for a non-positive or unparsable freeze.interval.
	ErrInvalidInterval = errors.New("invalid freeze.interval")
	// ErrInvalidIterations is returned for a non-positive freeze.iterations.
	ErrInvalidIterations = errors.New("invalid freeze.iterations")
	// ErrInvalidAppID is returned when app.id is not a reverse-DNS identifier.
	ErrInvalidAppID = errors.New("invalid app.id")
)

// Config represents drift.yaml.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Freeze FreezeConfig `yaml:"freeze"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// FreezeConfig tunes the freeze demo screen.
type FreezeConfig struct {
	Title string `yaml:"title,omitempty"`
	// Interval is a Go duration string such as "1s" or "250ms".
	Interval string `yaml:"interval,omitempty"`
	// Iterations is the number of additions per render of the counter.
	Iterations int `yaml:"iterations,omitempty"`
	// Theme is "light" or "dark". Anything else means dark.
	Theme string `yaml:"theme,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	AppName    string
	AppID      string
	Title      string
	Interval   time.Duration
	Iterations int
	Dark       bool
}

// Parse decodes drift.yaml. Empty input yields an empty Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if len(data) == 0 {
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse drift.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve parses drift.yaml and fills defaults. modulePath is the app's Go
// module path; it seeds the default app name and ID.
//
// An invalid app.id does not discard the rest of the file: Resolve returns
// the configuration with the module-derived app ID together with an error
// wrapping ErrInvalidAppID. Any other error returns a nil Resolved.
func Resolve(data []byte, modulePath string) (*Resolved, error) {
	if err := module.CheckPath(modulePath); err != nil {
		return nil, fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath)
	}

	var appErr error
	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		appErr = err
		appID = defaultAppID(modulePath, appName)
	}

	title := strings.TrimSpace(cfg.Freeze.Title)
	if title == "" {
		title = DefaultTitle
	}

	interval := DefaultInterval
	if raw := strings.TrimSpace(cfg.Freeze.Interval); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("%w: must be positive (got %s)", ErrInvalidInterval, raw)
		}
		interval = parsed
	}

	iterations := workload.DefaultIterations
	if cfg.Freeze.Iterations != 0 {
		if cfg.Freeze.Iterations < 0 {
			return nil, fmt.Errorf("%w: must be positive (got %d)", ErrInvalidIterations, cfg.Freeze.Iterations)
		}
		iterations = cfg.Freeze.Iterations
	}

	return &Resolved{
		AppName:    appName,
		AppID:      appID,
		Title:      title,
		Interval:   interval,
		Iterations: iterations,
		Dark:       !strings.EqualFold(strings.TrimSpace(cfg.Freeze.Theme), "light"),
	}, appErr
}

// Defaults returns the configuration used when drift.yaml cannot be read.
func Defaults(modulePath string) *Resolved {
	name := defaultAppName(modulePath)
	return &Resolved{
		AppName:    name,
		AppID:      defaultAppID(modulePath, name),
		Title:      DefaultTitle,
		Interval:   DefaultInterval,
		Iterations: workload.DefaultIterations,
		Dark:       true,
	}
}

func defaultAppName(modulePath string) string {
	modName, _, ok := module.SplitPathVersion(modulePath)
	if !ok {
		modName = modulePath
	}
	parts := strings.Split(modName, "/")
	base := parts[len(parts)-1]
	if base == "" {
		return "drift_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return fmt.Sprintf("com.example.%s", sanitizeSegment(appName, true))
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment, i > 0)
	}
	return strings.Join(segments, ".")
}

func sanitizeSegment(segment string, allowLeadingDigit bool) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		out = []rune("app")
	}
	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("%w: must contain at least one '.' (got %q)", ErrInvalidAppID, appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidAppID, appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("%w: segments cannot start with a digit (%q)", ErrInvalidAppID, appID)
		}
		if segment[0] == '_' {
			return fmt.Errorf("%w: segments cannot start with '_' (%q)", ErrInvalidAppID, appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("%w: invalid character %q in %q", ErrInvalidAppID, r, appID)
			}
		}
	}
	return nil
}
