package config

import (
	"os"
	"path/filepath"
)

// Default builds the built-in default table: a fully specified baseline
// configuration tree. Every load starts from a fresh copy, so the
// returned map is safe for the caller to merge into.
//
// Lists are represented as []any and numbers as int/float64 to match
// the shapes produced by the layer loaders.
func Default() map[string]any {
	configDir, cacheDir, dataDir := defaultDirs()

	return map[string]any{
		"version": "1.0.0",
		"paths": map[string]any{
			"base_video_path":     filepath.Join(homeDir(), "Videos"),
			"log_directory":       filepath.Join(dataDir, "logs"),
			"cache_directory":     cacheDir,
			"data_directory":      dataDir,
			"project_config_path": filepath.Join(configDir, "projects"),
			"user_config_path":    configDir,
		},
		"config_files": map[string]any{
			"user_config_file":    filepath.Join(configDir, "user_config.json"),
			"project_config_file": filepath.Join(configDir, "projects", "project_config.json"),

			// Whether to create config files automatically if they don't exist
			"auto_create": true,
			// Whether to create parent directories if they don't exist
			"create_directories": true,
			// File permissions (Unix only)
			"file_permissions":      0o644,
			"directory_permissions": 0o755,
		},
		"thumbnails": map[string]any{
			"default_resolution":    128,
			"cache_directory":       filepath.Join(cacheDir, "thumbnails"),
			"quality":               85,
			"max_cache_size_mb":     1024,
			"background_generation": true,
			"supported_formats": []any{
				".mp4", ".mov", ".avi", ".mkv", ".m4v", ".wmv", ".flv", ".webm",
			},
			"animated": map[string]any{
				"enabled":     true,
				"frame_count": 25,
				"fps":         10,
				"loop":        true,
				"format":      "gif",
				"optimize":    true,
				"max_size_kb": 500,
			},
		},
		"ffmpeg": map[string]any{
			"executable_path":          "ffmpeg",
			"timeout":                  30,
			"thumbnail_time_offset":    0.1,
			"max_concurrent_processes": 4,
		},
		"database": map[string]any{
			"path":                  filepath.Join(dataDir, "database", "stockshot.db"),
			"backup_enabled":        true,
			"backup_interval_hours": 24,
			"max_backups":           7,
		},
		"ui": map[string]any{
			"theme":                 "dark_blue.xml",
			"theme_enabled":         true,
			"default_view_mode":     "grid",
			"show_metadata_overlay": true,
			"thumbnail_size":        128,
			"window_geometry": map[string]any{
				"width":  1200,
				"height": 800,
				"x":      100,
				"y":      100,
			},
			"splitter_sizes":           []any{300, 900},
			"show_hidden_files":        false,
			"auto_refresh":             true,
			"refresh_interval_seconds": 30,
			"recursive_scan":           true,
		},
		"available_themes": map[string]any{
			"dark_themes": []any{
				"dark_teal.xml", "dark_blue.xml", "dark_amber.xml",
				"dark_cyan.xml", "dark_lightgreen.xml", "dark_pink.xml",
				"dark_purple.xml", "dark_red.xml", "dark_yellow.xml",
				"dark_medical.xml",
			},
			"light_themes": []any{
				"light_teal.xml", "light_blue.xml", "light_amber.xml",
				"light_cyan.xml", "light_lightgreen.xml", "light_pink.xml",
				"light_purple.xml", "light_red.xml", "light_yellow.xml",
				"light_orange.xml",
			},
		},
		"sequence_detection": map[string]any{
			"enabled": true,
			"default_patterns": []any{
				`(.+)\.(\d{4,})\.(exr|png|jpg|jpeg|tiff|tif|dpx|tga|bmp)$`,
				`(.+)_(\d{4,})\.(exr|png|jpg|jpeg|tiff|tif|dpx|tga|bmp)$`,
				`(.+)\.v\d+\.(\d{4,})\.(exr|png|jpg|jpeg|tiff|tif|dpx|tga|bmp)$`,
			},
			"custom_patterns":     []any{},
			"min_sequence_length": 2,
			"max_gap_frames":      10,
			"supported_extensions": []any{
				".exr", ".png", ".jpg", ".jpeg", ".tiff", ".tif", ".dpx", ".tga", ".bmp",
			},
			"folder_sequence_detection": map[string]any{
				"enabled": true,
				"ignored_extensions": []any{
					".tx", ".thumbs", ".thumb", ".tmp", ".bak", ".log",
					".txt", ".nfo", ".db", ".DS_Store",
				},
				"ignored_filenames": []any{
					"Thumbs.db", ".DS_Store", "desktop.ini", ".directory",
				},
			},
		},
		"metadata": map[string]any{
			"auto_extract":      true,
			"extract_on_import": true,
			"custom_fields":     []any{},
			"required_fields":   []any{},
			"default_tags":      []any{"untagged"},
			"export_formats":    []any{"json", "csv", "xml"},
		},
		"external_players": map[string]any{
			"default":     "",
			"players":     map[string]any{},
			"auto_detect": true,
			"common_players": map[string]any{
				"vlc": []any{"vlc", "/usr/bin/vlc", "/Applications/VLC.app/Contents/MacOS/VLC"},
				"djv": []any{"djv", "/apps/djv/bin/djv"},
			},
		},
		"performance": map[string]any{
			"max_concurrent_thumbnails": 4,
			"thumbnail_cache_size":      100000,
			"metadata_cache_size":       500000,
			"lazy_loading":              true,
			"preload_thumbnails":        true,
			"background_scanning":       true,
		},
		"color_management": map[string]any{
			"enabled":             false, // Requires OpenColorIO
			"default_colorspace":  "sRGB",
			"display_colorspace":  "sRGB",
			"config_path":         "",
			"apply_to_thumbnails": true,
			"auto_detect_config":  true,
			"fallback_to_builtin": true,
			"common_colorspaces": map[string]any{
				"linear": "Linear",
				"srgb":   "sRGB",
				"rec709": "Rec.709",
				"aces":   "ACES - ACEScg",
				"log":    "Cineon",
			},
			"display_settings": map[string]any{
				"default_display":    "sRGB",
				"default_view":       "Film",
				"available_displays": []any{"sRGB", "Rec.709", "P3-D65"},
			},
		},
		"logging": map[string]any{
			"level":            "INFO",
			"file_enabled":     true,
			"file_path":        filepath.Join(dataDir, "logs", "stockshot.log"),
			"max_file_size_mb": 10,
			"backup_count":     5,
			"console_enabled":  true,
		},
		"projects": map[string]any{
			"default_project":      "Default",
			"auto_create_projects": true,
			"project_isolation":    true,
			"recent_projects":      []any{},
			"max_recent_projects":  10,
		},
		"search": map[string]any{
			"index_enabled":       true,
			"index_content":       true,
			"search_history_size": 50,
			"case_sensitive":      false,
			"regex_enabled":       true,
		},
		"import": map[string]any{
			"auto_scan_on_startup":     true,
			"watch_directories":        true,
			"auto_generate_thumbnails": true,
			"auto_extract_metadata":    true,
			"duplicate_handling":       "skip", // skip, overwrite, rename
		},
		"directory_tree": map[string]any{
			"configured_paths":        []any{},
			"show_drives":             false, // Windows only
			"expand_configured_paths": true,
		},
	}
}

// defaultDirs returns the platform base directories for configuration,
// cache, and data.
func defaultDirs() (configDir, cacheDir, dataDir string) {
	configRoot, err := os.UserConfigDir()
	if err != nil {
		configRoot = "."
	}
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		cacheRoot = "."
	}

	configDir = filepath.Join(configRoot, "stockshot")
	cacheDir = filepath.Join(cacheRoot, "stockshot")
	dataDir = filepath.Join(cacheRoot, "stockshot", "data")
	return configDir, cacheDir, dataDir
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
