package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/stockshot/internal/config/layer"
	"github.com/dshills/stockshot/internal/config/loader"
)

// userOwnedKeys is the allow-list of settings the user layer owns.
// Saving the user layer persists exactly these subtrees; every other
// key already present in the user layer file is preserved untouched.
var userOwnedKeys = []string{
	"ui",
	"favorites.user_favorites",
	"external_players.default",
	"external_players.players",
	"thumbnails.preferred_resolution",
	"logging.level",
	"session",
}

// SaveUserConfig persists the user-owned subset of the current
// configuration into the user layer file.
func (m *Manager) SaveUserConfig() error {
	if !m.loaded {
		return ErrNotLoaded
	}
	if m.paths.User == "" {
		return ErrNoLayerPath
	}
	return m.saveUserLayer()
}

// saveUserLayer writes the user-owned subset into the user layer file,
// merging it over the file's existing content.
func (m *Manager) saveUserLayer() error {
	subset := make(map[string]any)
	for _, key := range userOwnedKeys {
		v, ok := layer.GetByPath(m.merged, key)
		if !ok || v == nil {
			continue
		}
		layer.SetByPath(subset, key, v)
	}

	return m.saveSubset(m.paths.User, subset)
}

// saveProjectFavorites replaces the project favorites mapping in the
// project layer file. Replacement (not merge) is deliberate: a project
// whose last favorite was removed must disappear from the file.
func (m *Manager) saveProjectFavorites(favorites map[string]any) error {
	if m.paths.Project == "" {
		return ErrNoLayerPath
	}

	existing, err := loader.ForPath(m.paths.Project).Load()
	if err != nil {
		m.logger.Warn("could not read existing project layer, rewriting",
			"path", m.paths.Project, "error", err)
	}
	if existing == nil {
		existing = defaultProjectLayer()
	}

	layer.SetByPath(existing, "favorites.project_favorites", layer.Clone(favorites))

	return m.writeLayerFile(m.paths.Project, existing)
}

// saveSubset merges an owned subset over a layer file's existing
// content and rewrites the file. Unreadable existing content is
// replaced rather than blocking the save.
func (m *Manager) saveSubset(path string, subset map[string]any) error {
	existing, err := loader.ForPath(path).Load()
	if err != nil {
		m.logger.Warn("could not read existing layer file, rewriting",
			"path", path, "error", err)
	}
	if existing == nil {
		existing = make(map[string]any)
	}

	merged := layer.DeepMerge(existing, subset)
	return m.writeLayerFile(path, merged)
}

// writeLayerFile serializes a layer document and overwrites the file in
// full. Permission bits come from the config_files section and are
// applied only to files and directories created by this write;
// pre-existing ones keep whatever mode the user gave them.
func (m *Manager) writeLayerFile(path string, data map[string]any) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, m.dirPermissions()); err != nil {
			return &IOError{Op: "create directory", Path: dir, Err: err}
		}
		m.chmod(dir, m.dirPermissions())
	}

	created := !fileExists(path)

	b, err := marshalLayer(path, data)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	if err := os.WriteFile(path, b, m.filePermissions()); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if created {
		m.chmod(path, m.filePermissions())
	}

	m.logger.Debug("wrote config layer", "path", path)
	return nil
}

// marshalLayer serializes a layer document in the format implied by the
// file extension.
func marshalLayer(path string, data map[string]any) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Marshal(data)
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// chmod applies permission bits best-effort to a freshly created file
// or directory, countering the process umask.
func (m *Manager) chmod(path string, mode os.FileMode) {
	if runtime.GOOS == "windows" {
		return
	}
	if err := os.Chmod(path, mode); err != nil {
		m.logger.Debug("cannot set permissions", "path", path, "error", err)
	}
}

// filePermissions returns the mode for created layer files.
func (m *Manager) filePermissions() os.FileMode {
	return m.permSetting("config_files.file_permissions", 0o644)
}

// dirPermissions returns the mode for created directories.
func (m *Manager) dirPermissions() os.FileMode {
	return m.permSetting("config_files.directory_permissions", 0o755)
}

func (m *Manager) permSetting(key string, def os.FileMode) os.FileMode {
	if m.merged == nil {
		return def
	}

	v, ok := layer.GetByPath(m.merged, key)
	if !ok {
		return def
	}

	switch n := v.(type) {
	case int:
		return os.FileMode(n)
	case int64:
		return os.FileMode(n)
	case float64:
		return os.FileMode(int(n))
	default:
		return def
	}
}

// ensureLayerFiles creates declared-but-missing layer files with their
// default documents. Runs once per successful load; failures are logged
// and loading proceeds.
func (m *Manager) ensureLayerFiles() {
	autoCreate, err := m.GetBool("config_files.auto_create", true)
	if err != nil || !autoCreate {
		m.logger.Debug("auto-creation of config files is disabled")
		return
	}

	createDirs, _ := m.GetBool("config_files.create_directories", true)

	m.ensureLayerFile(m.paths.User, defaultUserLayer(), createDirs)
	m.ensureLayerFile(m.paths.Project, defaultProjectLayer(), createDirs)
}

func (m *Manager) ensureLayerFile(path string, template map[string]any, createDirs bool) {
	if path == "" || fileExists(path) {
		return
	}

	if !createDirs && !fileExists(filepath.Dir(path)) {
		m.logger.Warn("parent directory missing and directory creation disabled", "path", path)
		return
	}

	if err := m.writeLayerFile(path, template); err != nil {
		m.logger.Warn("cannot create default config file", "path", path, "error", err)
		return
	}
	m.logger.Info("created default config file", "path", path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// defaultUserLayer is the document written when a declared user layer
// file does not exist yet.
func defaultUserLayer() map[string]any {
	return map[string]any{
		"user_id": "default_user",
		"ui": map[string]any{
			"theme":                 "dark",
			"default_view_mode":     "grid",
			"show_metadata_overlay": true,
			"window_geometry": map[string]any{
				"width":  1200,
				"height": 800,
				"x":      100,
				"y":      100,
			},
			"splitter_sizes": []any{300, 900},
		},
		"favorites": map[string]any{
			"user_favorites": []any{},
		},
		"external_players": map[string]any{
			"default": "",
			"players": map[string]any{},
		},
		"session": map[string]any{
			"tab_states": []any{},
		},
	}
}

// defaultProjectLayer is the document written when a declared project
// layer file does not exist yet.
func defaultProjectLayer() map[string]any {
	return map[string]any{
		"project_name": "Default Project",
		"sequence_patterns": []any{
			`(.+)\.(\d{4,})\.(exr|png|jpg|jpeg|tiff|tif|dpx)$`,
			`(.+)_(\d{4,})\.(exr|png|jpg|jpeg|tiff|tif|dpx)$`,
		},
		"metadata": map[string]any{
			"required_fields": []any{"source"},
			"custom_tags":     []any{"untagged"},
		},
		"favorites": map[string]any{
			"project_favorites": map[string]any{},
		},
	}
}
