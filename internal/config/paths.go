package config

import (
	"os"

	"github.com/dshills/stockshot/internal/config/layer"
)

// ensureDirKeys lists the directory-valued settings created after a
// successful load. Unlike the mandatory paths checked during
// validation, these directories are optimizations (caches, data, log
// locations): creation failures are logged and loading proceeds.
var ensureDirKeys = []string{
	"paths.cache_directory",
	"paths.data_directory",
	"paths.log_directory",
	"thumbnails.cache_directory",
	"paths.project_config_path",
	"paths.user_config_path",
}

// ensureDirectories creates each configured directory if missing.
// Runs once per successful load, after validation.
func (m *Manager) ensureDirectories() {
	perm := m.dirPermissions()

	for _, key := range ensureDirKeys {
		v, ok := layer.GetByPath(m.merged, key)
		if !ok {
			continue
		}

		dir, ok := v.(string)
		if !ok || dir == "" {
			continue
		}

		if err := os.MkdirAll(dir, perm); err != nil {
			m.logger.Warn("cannot create directory", "key", key, "dir", dir, "error", err)
			continue
		}
		m.logger.Debug("ensured directory exists", "dir", dir)
	}
}
