package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestUserFavorites(t *testing.T) {
	f := newFixture(t)
	m := f.load(t)

	added, err := m.AddUserFavorite("/media/shot_a.mov")
	if err != nil || !added {
		t.Fatalf("AddUserFavorite() = %v, %v; want true", added, err)
	}

	// A duplicate add is a no-op.
	added, err = m.AddUserFavorite("/media/shot_a.mov")
	if err != nil || added {
		t.Errorf("duplicate AddUserFavorite() = %v, %v; want false", added, err)
	}

	if _, err := m.AddUserFavorite("/media/shot_b.mov"); err != nil {
		t.Fatal(err)
	}

	favorites, err := m.UserFavorites()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/media/shot_a.mov", "/media/shot_b.mov"}
	if !reflect.DeepEqual(favorites, want) {
		t.Errorf("UserFavorites() = %v, want %v", favorites, want)
	}

	is, err := m.IsUserFavorite("/media/shot_a.mov")
	if err != nil || !is {
		t.Errorf("IsUserFavorite() = %v, %v; want true", is, err)
	}

	removed, err := m.RemoveUserFavorite("/media/shot_a.mov")
	if err != nil || !removed {
		t.Fatalf("RemoveUserFavorite() = %v, %v; want true", removed, err)
	}
	removed, err = m.RemoveUserFavorite("/media/shot_a.mov")
	if err != nil || removed {
		t.Errorf("second RemoveUserFavorite() = %v, %v; want false", removed, err)
	}

	is, _ = m.IsUserFavorite("/media/shot_a.mov")
	if is {
		t.Error("removed path still reported as favorite")
	}
}

func TestUserFavoritesPersisted(t *testing.T) {
	f := newFixture(t)
	m := f.load(t)

	if _, err := m.AddUserFavorite("/media/shot_a.mov"); err != nil {
		t.Fatal(err)
	}

	doc := readJSON(t, f.paths.User)
	favorites := doc["favorites"].(map[string]any)["user_favorites"].([]any)
	if len(favorites) != 1 || favorites[0] != "/media/shot_a.mov" {
		t.Errorf("persisted user favorites = %v", favorites)
	}

	// A fresh manager sees the persisted favorite.
	m2 := New()
	if err := m2.Load(f.paths); err != nil {
		t.Fatal(err)
	}
	is, err := m2.IsUserFavorite("/media/shot_a.mov")
	if err != nil || !is {
		t.Errorf("favorite not visible after reload: %v, %v", is, err)
	}
}

func TestProjectFavorites(t *testing.T) {
	f := newFixture(t)
	m := f.load(t)

	added, err := m.AddProjectFavorite("/media/shot_a.mov", "show_a")
	if err != nil || !added {
		t.Fatalf("AddProjectFavorite() = %v, %v; want true", added, err)
	}
	added, err = m.AddProjectFavorite("/media/shot_a.mov", "show_a")
	if err != nil || added {
		t.Errorf("duplicate AddProjectFavorite() = %v, %v; want false", added, err)
	}

	// The same path can be a favorite of several projects.
	if _, err := m.AddProjectFavorite("/media/shot_a.mov", "show_b"); err != nil {
		t.Fatal(err)
	}

	is, err := m.IsProjectFavorite("/media/shot_a.mov", "show_a")
	if err != nil || !is {
		t.Errorf("IsProjectFavorite(show_a) = %v, %v; want true", is, err)
	}
	is, _ = m.IsProjectFavorite("/media/shot_b.mov", "show_a")
	if is {
		t.Error("unknown path reported as project favorite")
	}

	favorites, err := m.ProjectFavorites("show_a")
	if err != nil || !reflect.DeepEqual(favorites, []string{"/media/shot_a.mov"}) {
		t.Errorf("ProjectFavorites(show_a) = %v, %v", favorites, err)
	}
	if favorites, _ := m.ProjectFavorites("unknown"); len(favorites) != 0 {
		t.Errorf("ProjectFavorites(unknown) = %v, want empty", favorites)
	}
}

func TestProjectFavoritesCleanup(t *testing.T) {
	f := newFixture(t)
	m := f.load(t)

	if _, err := m.AddProjectFavorite("/media/shot_a.mov", "show_a"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddProjectFavorite("/media/shot_b.mov", "show_b"); err != nil {
		t.Fatal(err)
	}

	removed, err := m.RemoveProjectFavorite("/media/shot_a.mov", "show_a")
	if err != nil || !removed {
		t.Fatalf("RemoveProjectFavorite() = %v, %v; want true", removed, err)
	}

	// Removing the last favorite drops the project from the file entirely.
	doc := readJSON(t, f.paths.Project)
	projectFavorites := doc["favorites"].(map[string]any)["project_favorites"].(map[string]any)
	if _, ok := projectFavorites["show_a"]; ok {
		t.Error("emptied project still present in project layer file")
	}
	if _, ok := projectFavorites["show_b"]; !ok {
		t.Error("unrelated project lost from project layer file")
	}
}

func TestFavoritesRequireLoad(t *testing.T) {
	m := New()

	if _, err := m.AddUserFavorite("/p"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("AddUserFavorite error = %v, want ErrNotLoaded", err)
	}
	if _, err := m.RemoveProjectFavorite("/p", "show"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("RemoveProjectFavorite error = %v, want ErrNotLoaded", err)
	}
	if _, err := m.UserFavorites(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("UserFavorites error = %v, want ErrNotLoaded", err)
	}
	if _, err := m.UserLayer(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("UserLayer error = %v, want ErrNotLoaded", err)
	}
}

func TestFavoritesWithoutLayerPaths(t *testing.T) {
	f := newFixture(t)
	f.paths.Project = ""
	f.paths.User = ""
	m := f.load(t)

	// In-memory favorites work without backing files.
	added, err := m.AddUserFavorite("/media/shot_a.mov")
	if err != nil || !added {
		t.Errorf("AddUserFavorite() = %v, %v; want true", added, err)
	}
	added, err = m.AddProjectFavorite("/media/shot_a.mov", "show_a")
	if err != nil || !added {
		t.Errorf("AddProjectFavorite() = %v, %v; want true", added, err)
	}

	is, _ := m.IsUserFavorite("/media/shot_a.mov")
	if !is {
		t.Error("in-memory user favorite lost")
	}
}

func TestRawLayerAccessors(t *testing.T) {
	f := newFixture(t)
	writeJSON(t, f.paths.User, map[string]any{"user_id": "artist1"})
	m := f.load(t)

	userDoc, err := m.UserLayer()
	if err != nil || userDoc["user_id"] != "artist1" {
		t.Errorf("UserLayer() = %v, %v", userDoc, err)
	}

	// The project file was seeded during load.
	projectDoc, err := m.ProjectLayer()
	if err != nil || projectDoc["project_name"] != "Default Project" {
		t.Errorf("ProjectLayer() = %v, %v", projectDoc, err)
	}
}
