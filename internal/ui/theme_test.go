package ui

import "testing"

func TestThemeFor(t *testing.T) {
	dark := ThemeFor(true)
	if !dark.Dark || dark.Name != "Dark" {
		t.Fatalf("ThemeFor(true) = %q dark=%v, want Dark/true", dark.Name, dark.Dark)
	}

	light := ThemeFor(false)
	if light.Dark || light.Name != "Light" {
		t.Fatalf("ThemeFor(false) = %q dark=%v, want Light/false", light.Name, light.Dark)
	}
}

func TestThemesDiffer(t *testing.T) {
	dark := ThemeFor(true)
	light := ThemeFor(false)
	if dark.Background == light.Background {
		t.Fatal("dark and light themes share a background color")
	}
	if dark.Text == light.Text {
		t.Fatal("dark and light themes share a text color")
	}
}

func TestStylesRender(t *testing.T) {
	// Styles only carry colors and padding; rendering must not panic and
	// must preserve the text.
	styles := ThemeFor(true).Styles()
	for name, fn := range map[string]func(...string) string{
		"Text":   styles.Text.Render,
		"Muted":  styles.MutedText.Render,
		"Accent": styles.AccentText.Render,
		"Error":  styles.ErrorText.Render,
	} {
		if out := fn("probe"); out == "" {
			t.Errorf("%s style rendered to empty string", name)
		}
	}
}
