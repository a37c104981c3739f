package config

import (
	"fmt"
	"log/slog"

	"github.com/dshills/stockshot/internal/config/layer"
	"github.com/dshills/stockshot/internal/config/loader"
	"github.com/dshills/stockshot/internal/config/notify"
	"github.com/dshills/stockshot/internal/config/schema"
	"github.com/dshills/stockshot/internal/logging"
)

// LayerPaths names the file locations of the three configuration layers.
// A slot may be set without the backing file existing yet; missing files
// are created on first load when auto-creation is enabled.
type LayerPaths struct {
	General string
	Project string
	User    string
}

// Manager provides unified access to the Stockshot configuration system.
// It resolves the effective settings tree from the layer cascade,
// validates it, persists owned subsets back to their layers, and manages
// the user and project favorites stored in those layers.
//
// Manager performs no locking; callers must serialize concurrent access.
type Manager struct {
	logger   *slog.Logger
	notifier *notify.Notifier

	// Live state from the last successful load.
	stack  *layer.Stack
	merged map[string]any
	paths  LayerPaths
	loaded bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used by the manager and its components.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new configuration manager. Until Load succeeds, all
// accessor operations fail with ErrNotLoaded.
func New(opts ...Option) *Manager {
	m := &Manager{
		logger:   logging.Nop(),
		notifier: notify.New(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Loaded reports whether a full load has succeeded.
func (m *Manager) Loaded() bool {
	return m.loaded
}

// Load resolves the effective configuration from the built-in defaults
// and the given layer files, in cascade order. Layer files that are
// missing, malformed, or fail their per-layer checks are skipped with a
// warning; a validation failure of the final merged tree is fatal and
// leaves any previously loaded state untouched.
func (m *Manager) Load(paths LayerPaths) error {
	m.logger.Info("loading configuration",
		"general", paths.General, "project", paths.Project, "user", paths.User)

	stack := layer.NewStack()
	stack.Add(layer.NewWithData("defaults", layer.SourceBuiltin, Default()))

	m.loadLayer(stack, layer.SourceGeneral, paths.General, nil)
	m.loadLayer(stack, layer.SourceProject, paths.Project, schema.ValidateProjectLayer)
	m.loadLayer(stack, layer.SourceUser, paths.User, schema.ValidateUserLayer)

	merged := stack.Merge()
	if err := schema.Validate(merged); err != nil {
		m.logger.Error("configuration validation failed", "error", err)
		return err
	}

	m.stack = stack
	m.merged = merged
	m.paths = paths
	m.loaded = true

	m.ensureDirectories()
	m.ensureLayerFiles()

	m.notifier.NotifyReload("load")
	m.logger.Info("configuration loaded", "layers", stack.Len())

	return nil
}

// Reload re-runs the load pipeline against the previously recorded
// layer paths.
func (m *Manager) Reload() error {
	if !m.loaded {
		return ErrNotLoaded
	}
	return m.Load(m.paths)
}

// loadLayer reads one layer file into the stack. All failures here are
// recoverable: the layer is skipped and loading continues.
func (m *Manager) loadLayer(stack *layer.Stack, source layer.Source, path string, check func(map[string]any) error) {
	if path == "" {
		return
	}

	data, err := loader.ForPath(path).Load()
	if err != nil {
		m.logger.Warn("skipping config layer",
			"layer", source.String(), "path", path, "error", err)
		return
	}
	if data == nil {
		m.logger.Debug("config layer file missing",
			"layer", source.String(), "path", path)
		return
	}

	if check != nil {
		if err := check(data); err != nil {
			m.logger.Warn("skipping invalid config layer",
				"layer", source.String(), "path", path, "error", err)
			return
		}
	}

	l := layer.NewWithData(source.String(), source, data)
	l.Path = path
	stack.Add(l)
	m.logger.Info("loaded config layer", "layer", source.String(), "path", path)
}

// Get returns the value at the given dotted key from the merged
// configuration, or def the moment any key segment is missing or an
// intermediate value is not a mapping. The returned value is a borrowed
// view; callers must not mutate it.
func (m *Manager) Get(key string, def any) (any, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}

	if v, ok := layer.GetByPath(m.merged, key); ok {
		return v, nil
	}
	return def, nil
}

// Set assigns the value at the given dotted key, creating intermediate
// mappings as needed. When persist is true and a user layer path is
// configured, the user-owned subset is saved; persistence failures are
// logged but do not fail the in-memory mutation.
func (m *Manager) Set(key string, value any, persist bool) error {
	if !m.loaded {
		return ErrNotLoaded
	}

	old, _ := layer.GetByPath(m.merged, key)
	layer.SetByPath(m.merged, key, value)
	m.logger.Debug("set configuration", "key", key)
	m.notifier.NotifySet(key, old, value, "set")

	if persist {
		if m.paths.User == "" {
			m.logger.Debug("no user layer path configured, change not persisted", "key", key)
			return nil
		}
		if err := m.saveUserLayer(); err != nil {
			m.logger.Warn("failed to persist configuration", "key", key, "error", err)
		}
	}

	return nil
}

// GetString returns a string value at the given key, or def if unset.
func (m *Manager) GetString(key, def string) (string, error) {
	v, err := m.Get(key, nil)
	if err != nil {
		return "", err
	}
	if v == nil {
		return def, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Key: key, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given key, or def if unset.
func (m *Manager) GetInt(key string, def int) (int, error) {
	v, err := m.Get(key, nil)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}

	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		// JSON layers decode all numbers as float64; only integral
		// values are acceptable here.
		if float64(int(val)) != val {
			return 0, &TypeError{Key: key, Expected: "int", Actual: typeName(v)}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Key: key, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given key, or def if unset.
func (m *Manager) GetBool(key string, def bool) (bool, error) {
	v, err := m.Get(key, nil)
	if err != nil {
		return false, err
	}
	if v == nil {
		return def, nil
	}

	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Key: key, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetFloat returns a float64 value at the given key, or def if unset.
func (m *Manager) GetFloat(key string, def float64) (float64, error) {
	v, err := m.Get(key, nil)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}

	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Key: key, Expected: "float64", Actual: typeName(v)}
	}
}

// GetStringSlice returns a string slice at the given key, or def if unset.
func (m *Manager) GetStringSlice(key string, def []string) ([]string, error) {
	v, err := m.Get(key, nil)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return def, nil
	}

	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &TypeError{Key: key, Expected: "[]string", Actual: typeName(v)}
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, &TypeError{Key: key, Expected: "[]string", Actual: typeName(v)}
	}
}

// Merged returns an independent snapshot of the fully merged
// configuration tree.
func (m *Manager) Merged() (map[string]any, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return layer.Clone(m.merged), nil
}

// Subscribe registers an observer for all configuration changes and
// reload events.
func (m *Manager) Subscribe(observer notify.Observer) *notify.Subscription {
	return m.notifier.Subscribe(observer)
}

// SubscribePath registers an observer for changes to a specific key and
// its children.
func (m *Manager) SubscribePath(path string, observer notify.Observer) *notify.Subscription {
	return m.notifier.SubscribePath(path, observer)
}

// Info describes the state of the loaded configuration.
type Info struct {
	Loaded     bool
	LayerPaths map[string]string
	Version    string
	TotalKeys  int
}

// Info returns information about the loaded configuration files.
func (m *Manager) Info() Info {
	info := Info{
		Loaded:     m.loaded,
		LayerPaths: make(map[string]string),
	}

	if m.paths.General != "" {
		info.LayerPaths["general"] = m.paths.General
	}
	if m.paths.Project != "" {
		info.LayerPaths["project"] = m.paths.Project
	}
	if m.paths.User != "" {
		info.LayerPaths["user"] = m.paths.User
	}

	if m.loaded {
		if v, ok := layer.GetByPath(m.merged, "version"); ok {
			if s, ok := v.(string); ok {
				info.Version = s
			}
		}
		info.TotalKeys = countKeys(m.merged)
	}

	return info
}

// countKeys recursively counts leaf keys in a configuration tree.
func countKeys(cfg map[string]any) int {
	count := 0
	for _, v := range cfg {
		if nested, ok := v.(map[string]any); ok {
			count += countKeys(nested)
		} else {
			count++
		}
	}
	return count
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
