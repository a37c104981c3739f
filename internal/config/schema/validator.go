// Package schema validates merged configuration trees for Stockshot.
//
// Validation runs an ordered battery of per-section checks over the
// fully merged tree. Checks fail fast: the first violation aborts the
// battery and is returned as a *ValidationError. The only side effect is
// directory creation for the mandatory configuration paths and the
// database location; a tree whose required directories cannot be created
// is not a usable configuration, so those failures are fatal here.
package schema

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/dshills/stockshot/internal/logging"
)

// Validate checks a fully merged configuration tree against the
// per-section rules. It returns nil if every section passes, or the
// first *ValidationError encountered.
func Validate(cfg map[string]any) error {
	checks := []func(map[string]any) error{
		validatePaths,
		validateFFmpeg,
		validateDatabase,
		validateUI,
		validateSequenceDetection,
		validateMetadata,
		validateExternalPlayers,
		validateColorManagement,
		validateLogging,
	}

	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}

	return nil
}

// section returns the named top-level section as a map. A missing
// section yields an empty map; a present non-mapping section is a
// violation reported by the caller via the returned error.
func section(cfg map[string]any, name string) (map[string]any, error) {
	v, exists := cfg[name]
	if !exists {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fail(name, "", "must be a mapping, got %T", v)
	}
	return m, nil
}

func validatePaths(cfg map[string]any) error {
	paths, err := section(cfg, "paths")
	if err != nil {
		return err
	}

	for _, key := range []string{"project_config_path", "user_config_path"} {
		v, exists := paths[key]
		if !exists {
			return fail("paths", key, "missing required path")
		}

		dir, ok := v.(string)
		if !ok {
			return fail("paths", key, "must be a string, got %T", v)
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return failErr("paths", key, err, "cannot access or create path: %v", err)
		}
	}

	return nil
}

func validateFFmpeg(cfg map[string]any) error {
	ffmpeg, err := section(cfg, "ffmpeg")
	if err != nil {
		return err
	}

	if v, exists := ffmpeg["executable_path"]; exists {
		if _, ok := v.(string); !ok {
			return fail("ffmpeg", "executable_path", "must be a string, got %T", v)
		}
	}

	if v, exists := ffmpeg["timeout"]; exists {
		f, ok := toFloat64(v)
		if !ok || f <= 0 {
			return fail("ffmpeg", "timeout", "must be a positive number, got %v", v)
		}
	}

	if v, exists := ffmpeg["max_concurrent_processes"]; exists {
		n, ok := toInt(v)
		if !ok || n < 1 || n > 16 {
			return fail("ffmpeg", "max_concurrent_processes", "must be an integer between 1 and 16, got %v", v)
		}
	}

	return nil
}

func validateDatabase(cfg map[string]any) error {
	database, err := section(cfg, "database")
	if err != nil {
		return err
	}

	if v, exists := database["path"]; exists {
		dbPath, ok := v.(string)
		if !ok {
			return fail("database", "path", "must be a string, got %T", v)
		}

		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return failErr("database", "path", err, "cannot access database directory: %v", err)
		}
	}

	if v, exists := database["max_backups"]; exists {
		n, ok := toInt(v)
		if !ok || n < 0 {
			return fail("database", "max_backups", "must be a non-negative integer, got %v", v)
		}
	}

	return nil
}

func validateUI(cfg map[string]any) error {
	ui, err := section(cfg, "ui")
	if err != nil {
		return err
	}

	if v, exists := ui["theme"]; exists {
		theme, ok := v.(string)
		if !ok || !validTheme(cfg, theme) {
			return fail("ui", "theme", "unknown theme %v", v)
		}
	}

	if v, exists := ui["default_view_mode"]; exists {
		mode, ok := v.(string)
		if !ok || (mode != "grid" && mode != "list" && mode != "advanced") {
			return fail("ui", "default_view_mode", "must be one of grid, list, advanced; got %v", v)
		}
	}

	if v, exists := ui["thumbnail_size"]; exists {
		n, ok := toInt(v)
		if !ok || n < 32 || n > 512 {
			return fail("ui", "thumbnail_size", "must be an integer between 32 and 512, got %v", v)
		}
	}

	if v, exists := ui["window_geometry"]; exists {
		geometry, ok := v.(map[string]any)
		if !ok {
			return fail("ui", "window_geometry", "must be a mapping, got %T", v)
		}
		for _, key := range []string{"width", "height", "x", "y"} {
			g, exists := geometry[key]
			if !exists {
				return fail("ui", "window_geometry", "missing required key %s", key)
			}
			if _, ok := toInt(g); !ok {
				return fail("ui", "window_geometry", "%s must be an integer, got %v", key, g)
			}
		}
	}

	return nil
}

// validTheme reports whether name is an accepted interface theme: the
// basic light/dark/auto modes or any theme listed under available_themes.
func validTheme(cfg map[string]any, name string) bool {
	switch name {
	case "light", "dark", "auto":
		return true
	}

	available, ok := cfg["available_themes"].(map[string]any)
	if !ok {
		return false
	}

	for _, group := range available {
		themes, ok := group.([]any)
		if !ok {
			continue
		}
		for _, t := range themes {
			if s, ok := t.(string); ok && s == name {
				return true
			}
		}
	}

	return false
}

func validateSequenceDetection(cfg map[string]any) error {
	sequence, err := section(cfg, "sequence_detection")
	if err != nil {
		return err
	}

	for _, key := range []string{"default_patterns", "custom_patterns"} {
		v, exists := sequence[key]
		if !exists {
			continue
		}

		patterns, ok := v.([]any)
		if !ok {
			return fail("sequence_detection", key, "must be a list, got %T", v)
		}

		for _, p := range patterns {
			pattern, ok := p.(string)
			if !ok {
				return fail("sequence_detection", key, "patterns must be strings, got %T", p)
			}
			if _, err := regexp.Compile(pattern); err != nil {
				return failErr("sequence_detection", key, err, "invalid pattern %q: %v", pattern, err)
			}
		}
	}

	if v, exists := sequence["min_sequence_length"]; exists {
		n, ok := toInt(v)
		if !ok || n < 1 {
			return fail("sequence_detection", "min_sequence_length", "must be a positive integer, got %v", v)
		}
	}

	if v, exists := sequence["max_gap_frames"]; exists {
		n, ok := toInt(v)
		if !ok || n < 0 {
			return fail("sequence_detection", "max_gap_frames", "must be a non-negative integer, got %v", v)
		}
	}

	return nil
}

func validateMetadata(cfg map[string]any) error {
	metadata, err := section(cfg, "metadata")
	if err != nil {
		return err
	}

	if v, exists := metadata["export_formats"]; exists {
		formats, ok := v.([]any)
		if !ok {
			return fail("metadata", "export_formats", "must be a list, got %T", v)
		}

		for _, f := range formats {
			format, ok := f.(string)
			if !ok {
				return fail("metadata", "export_formats", "formats must be strings, got %T", f)
			}
			switch format {
			case "json", "csv", "xml", "yaml":
			default:
				return fail("metadata", "export_formats", "invalid export format %q", format)
			}
		}
	}

	if v, exists := metadata["custom_fields"]; exists {
		if _, ok := v.([]any); !ok {
			return fail("metadata", "custom_fields", "must be a list, got %T", v)
		}
	}

	return nil
}

func validateExternalPlayers(cfg map[string]any) error {
	players, err := section(cfg, "external_players")
	if err != nil {
		return err
	}

	if v, exists := players["players"]; exists {
		playerMap, ok := v.(map[string]any)
		if !ok {
			return fail("external_players", "players", "must be a mapping, got %T", v)
		}

		for name, path := range playerMap {
			if _, ok := path.(string); !ok {
				return fail("external_players", "players", "player %q path must be a string, got %T", name, path)
			}
		}
	}

	return nil
}

func validateColorManagement(cfg map[string]any) error {
	color, err := section(cfg, "color_management")
	if err != nil {
		return err
	}

	if v, exists := color["config_path"]; exists {
		configPath, ok := v.(string)
		if !ok {
			return fail("color_management", "config_path", "must be a string, got %T", v)
		}

		if configPath != "" {
			if _, err := os.Stat(configPath); err != nil {
				return failErr("color_management", "config_path", err, "config file not found: %s", configPath)
			}
		}
	}

	return nil
}

func validateLogging(cfg map[string]any) error {
	logCfg, err := section(cfg, "logging")
	if err != nil {
		return err
	}

	if v, exists := logCfg["level"]; exists {
		level, ok := v.(string)
		if !ok || !logging.ValidLevel(level) {
			return fail("logging", "level", "must be one of %v, got %v", logging.Levels(), v)
		}
	}

	return nil
}
