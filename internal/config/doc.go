// Package config provides the cascading configuration system for
// Stockshot Browser.
//
// The config package manages loading, merging, validating, and
// persisting all browser settings: paths, thumbnail generation, FFmpeg
// integration, interface preferences, sequence detection, metadata
// export, external players, and user/project favorites.
//
// # Architecture
//
// Configuration is resolved from ordered layers, later layers
// overriding earlier ones (recursively for nested mappings):
//
//	┌─────────────────────────────┐
//	│  4. User Config             │  ← user_config.json
//	├─────────────────────────────┤
//	│  3. Project Config          │  ← project_config.json
//	├─────────────────────────────┤
//	│  2. General Config          │  ← site-wide overrides
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Layer file loading (JSON, TOML)
//   - layer: Layer types, deep merge, dotted-path tree operations
//   - schema: Section-by-section validation of the merged tree
//   - notify: Change notification and observer pattern
//
// # Basic Usage
//
// Load configuration from explicit layer paths:
//
//	mgr := config.New(config.WithLogger(log))
//	err := mgr.Load(config.LayerPaths{
//		General: "/etc/stockshot/config.json",
//		Project: projectDir + "/project_config.json",
//		User:    userDir + "/user_config.json",
//	})
//
// Read and write settings with dotted keys:
//
//	theme, err := mgr.GetString("ui.theme", "dark")
//	err = mgr.Set("ui.thumbnail_size", 256, true)
//
// # Concurrency
//
// The subsystem is single-threaded and synchronous: it holds no locks
// and provides none. Callers that share a Manager across goroutines
// must serialize access externally. Values returned by Get are borrowed
// views into the live tree and must not be mutated outside Set.
package config
