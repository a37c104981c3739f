package schema

// Per-layer checks run against a single layer's raw content before it is
// merged into the cascade. Unlike Validate, failures here are
// recoverable: the manager logs a warning and skips the layer.

// ValidateProjectLayer checks a project layer document.
func ValidateProjectLayer(cfg map[string]any) error {
	if v, exists := cfg["project_name"]; exists {
		name, ok := v.(string)
		if !ok || name == "" {
			return fail("project", "project_name", "must be a non-empty string, got %v", v)
		}
	}

	if v, exists := cfg["sequence_patterns"]; exists {
		patterns, ok := v.([]any)
		if !ok {
			return fail("project", "sequence_patterns", "must be a list, got %T", v)
		}
		for _, p := range patterns {
			if _, ok := p.(string); !ok {
				return fail("project", "sequence_patterns", "patterns must be strings, got %T", p)
			}
		}
	}

	return nil
}

// ValidateUserLayer checks a user layer document.
func ValidateUserLayer(cfg map[string]any) error {
	if v, exists := cfg["user_id"]; exists {
		id, ok := v.(string)
		if !ok || id == "" {
			return fail("user", "user_id", "must be a non-empty string, got %v", v)
		}
	}

	if favorites, ok := cfg["favorites"].(map[string]any); ok {
		if v, exists := favorites["user_favorites"]; exists {
			if _, ok := v.([]any); !ok {
				return fail("user", "favorites.user_favorites", "must be a list, got %T", v)
			}
		}
	}

	return nil
}
