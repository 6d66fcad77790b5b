package catalog

import "testing"

func TestThemeBySlug(t *testing.T) {
	theme, ok := ThemeBySlug("anxiety-unwind")
	if !ok {
		t.Fatal("anxiety-unwind not found")
	}
	if theme.Name != "Anxiety Unwind" || theme.Emoji != "🌊" {
		t.Fatalf("theme = %+v", theme)
	}
	if _, ok := ThemeBySlug("no-such-room"); ok {
		t.Fatal("unknown slug resolved")
	}
}

func TestFeaturedThemeIsFirst(t *testing.T) {
	if len(GroupThemes) == 0 || GroupThemes[0].Slug != "student-stress" {
		t.Fatalf("featured theme = %+v", GroupThemes)
	}
}

func TestEnvironmentByID(t *testing.T) {
	env, ok := EnvironmentByID("therapy_forest")
	if !ok {
		t.Fatal("therapy_forest not found")
	}
	if env.TherapyType != "Grounding" || env.NameHindi == "" {
		t.Fatalf("environment = %+v", env)
	}
	if _, ok := EnvironmentByID("volcano"); ok {
		t.Fatal("unknown environment resolved")
	}
}

// TestDefaultModulesResolve: every default module id must exist in the
// catalog, or quick-launched VR sessions would carry dangling references.
func TestDefaultModulesResolve(t *testing.T) {
	for _, id := range DefaultModules {
		if _, ok := ModuleByID(id); !ok {
			t.Fatalf("default module %q missing from catalog", id)
		}
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	slugs := map[string]bool{}
	for _, th := range GroupThemes {
		if slugs[th.Slug] {
			t.Fatalf("duplicate theme slug %q", th.Slug)
		}
		slugs[th.Slug] = true
	}
	envs := map[string]bool{}
	for _, e := range VREnvironments {
		if envs[e.ID] {
			t.Fatalf("duplicate environment id %q", e.ID)
		}
		envs[e.ID] = true
	}
	mods := map[string]bool{}
	for _, m := range CBTModules {
		if mods[m.ID] {
			t.Fatalf("duplicate module id %q", m.ID)
		}
		mods[m.ID] = true
	}
}
