package config

import (
	"slices"

	"github.com/dshills/stockshot/internal/config/layer"
	"github.com/dshills/stockshot/internal/config/loader"
)

// Favorites are bookmark lists of media file paths. User favorites live
// in the user layer; project favorites live in the project layer, keyed
// by project name. All mutators are idempotent: a duplicate add or a
// missing remove reports false without error. When a mutation did
// change the in-memory list, the boolean result is valid even if
// persisting it failed.

// AddUserFavorite appends a path to the user favorites if absent.
// Reports whether the path was added.
func (m *Manager) AddUserFavorite(path string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}

	favorites := m.userFavoriteList()
	if slices.Contains(favorites, path) {
		m.logger.Debug("already in user favorites", "path", path)
		return false, nil
	}

	favorites = append(favorites, path)
	layer.SetByPath(m.merged, "favorites.user_favorites", toAnyList(favorites))
	m.logger.Info("added user favorite", "path", path)

	return true, m.persistUserFavorites()
}

// RemoveUserFavorite removes a path from the user favorites if present.
// Reports whether the path was removed.
func (m *Manager) RemoveUserFavorite(path string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}

	favorites := m.userFavoriteList()
	i := slices.Index(favorites, path)
	if i < 0 {
		m.logger.Debug("not in user favorites", "path", path)
		return false, nil
	}

	favorites = slices.Delete(favorites, i, i+1)
	layer.SetByPath(m.merged, "favorites.user_favorites", toAnyList(favorites))
	m.logger.Info("removed user favorite", "path", path)

	return true, m.persistUserFavorites()
}

// IsUserFavorite reports whether a path is in the user favorites.
func (m *Manager) IsUserFavorite(path string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}
	return slices.Contains(m.userFavoriteList(), path), nil
}

// UserFavorites returns the user favorites in order.
func (m *Manager) UserFavorites() ([]string, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return m.userFavoriteList(), nil
}

// AddProjectFavorite appends a path to a project's favorites if absent.
// Reports whether the path was added.
func (m *Manager) AddProjectFavorite(path, project string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}

	favorites := m.projectFavoriteMap()
	list := stringList(favorites[project])
	if slices.Contains(list, path) {
		m.logger.Debug("already in project favorites", "project", project, "path", path)
		return false, nil
	}

	list = append(list, path)
	favorites[project] = toAnyList(list)
	layer.SetByPath(m.merged, "favorites.project_favorites", favorites)
	m.logger.Info("added project favorite", "project", project, "path", path)

	return true, m.persistProjectFavorites(favorites)
}

// RemoveProjectFavorite removes a path from a project's favorites if
// present. A project whose list becomes empty is removed entirely.
// Reports whether the path was removed.
func (m *Manager) RemoveProjectFavorite(path, project string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}

	favorites := m.projectFavoriteMap()
	list := stringList(favorites[project])
	i := slices.Index(list, path)
	if i < 0 {
		m.logger.Debug("not in project favorites", "project", project, "path", path)
		return false, nil
	}

	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(favorites, project)
	} else {
		favorites[project] = toAnyList(list)
	}
	layer.SetByPath(m.merged, "favorites.project_favorites", favorites)
	m.logger.Info("removed project favorite", "project", project, "path", path)

	return true, m.persistProjectFavorites(favorites)
}

// IsProjectFavorite reports whether a path is in a project's favorites.
func (m *Manager) IsProjectFavorite(path, project string) (bool, error) {
	if !m.loaded {
		return false, ErrNotLoaded
	}
	return slices.Contains(stringList(m.projectFavoriteMap()[project]), path), nil
}

// ProjectFavorites returns a project's favorites in order.
func (m *Manager) ProjectFavorites(project string) ([]string, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return stringList(m.projectFavoriteMap()[project]), nil
}

// UserLayer returns the raw on-disk content of the user layer file.
func (m *Manager) UserLayer() (map[string]any, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return m.rawLayer(m.paths.User), nil
}

// ProjectLayer returns the raw on-disk content of the project layer file.
func (m *Manager) ProjectLayer() (map[string]any, error) {
	if !m.loaded {
		return nil, ErrNotLoaded
	}
	return m.rawLayer(m.paths.Project), nil
}

func (m *Manager) rawLayer(path string) map[string]any {
	if path == "" {
		return map[string]any{}
	}

	data, err := loader.ForPath(path).Load()
	if err != nil {
		m.logger.Warn("failed to read layer file", "path", path, "error", err)
		return map[string]any{}
	}
	if data == nil {
		return map[string]any{}
	}
	return data
}

// persistUserFavorites saves the user layer; a missing user layer path
// is a silent no-op so in-memory favorites work without persistence.
func (m *Manager) persistUserFavorites() error {
	if m.paths.User == "" {
		m.logger.Debug("no user layer path configured, favorites not persisted")
		return nil
	}
	return m.saveUserLayer()
}

// persistProjectFavorites saves the project favorites mapping; a
// missing project layer path is a silent no-op.
func (m *Manager) persistProjectFavorites(favorites map[string]any) error {
	if m.paths.Project == "" {
		m.logger.Debug("no project layer path configured, favorites not persisted")
		return nil
	}
	return m.saveProjectFavorites(favorites)
}

func (m *Manager) userFavoriteList() []string {
	v, ok := layer.GetByPath(m.merged, "favorites.user_favorites")
	if !ok {
		return nil
	}
	return stringList(v)
}

func (m *Manager) projectFavoriteMap() map[string]any {
	v, ok := layer.GetByPath(m.merged, "favorites.project_favorites")
	if !ok {
		return map[string]any{}
	}

	favorites, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return favorites
}

// stringList extracts the string entries of a decoded list value.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// toAnyList converts a string slice to the []any shape used in the tree.
func toAnyList(list []string) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = s
	}
	return out
}
