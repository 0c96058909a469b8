package theme

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinThemes embed.FS

// DefaultThemeID is selected when no persisted or configured theme exists.
const DefaultThemeID = "ember"

// Item is one catalog entry: the theme plus its stable identifier (the
// file name without extension).
type Item struct {
	ID    string
	Theme Theme
}

// Catalog holds the ordered theme list and the current selection.
type Catalog struct {
	items    []Item
	selected int
}

// LoadCatalog loads embedded builtin themes, then overlays user themes from
// ~/.termsnake/themes/. A user theme with the same id replaces the builtin
// one. The catalog always contains at least the fallback theme.
func LoadCatalog() *Catalog {
	order := make([]string, 0, 8)
	byID := make(map[string]Theme)

	entries, err := builtinThemes.ReadDir("builtin")
	if err == nil {
		for _, entry := range entries {
			data, readErr := builtinThemes.ReadFile("builtin/" + entry.Name())
			if readErr != nil {
				continue
			}
			t, parseErr := parseTheme(data)
			if parseErr != nil {
				continue
			}
			insertTheme(&order, byID, themeID(entry.Name()), t)
		}
	}

	if dir := userThemeDir(); dir != "" {
		mergeThemeDir(dir, &order, byID)
	}

	if len(byID) == 0 {
		insertTheme(&order, byID, "fallback", Fallback())
	}

	items := make([]Item, 0, len(order))
	for _, id := range order {
		items = append(items, Item{ID: id, Theme: byID[id]})
	}

	c := &Catalog{items: items}
	c.Select(DefaultThemeID)
	return c
}

func mergeThemeDir(dir string, order *[]string, byID map[string]Theme) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, err := parseThemeFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		insertTheme(order, byID, themeID(name), t)
	}
}

func insertTheme(order *[]string, byID map[string]Theme, id string, t Theme) {
	if _, exists := byID[id]; !exists {
		*order = append(*order, id)
	}
	byID[id] = t
}

func themeID(filename string) string {
	return strings.TrimSuffix(filename, ".yaml")
}

func userThemeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termsnake", "themes")
}

// Len returns the number of themes in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the ordered catalog entries.
func (c *Catalog) Items() []Item {
	return c.items
}

// Current returns the selected theme.
func (c *Catalog) Current() Theme {
	return c.items[c.selected].Theme
}

// CurrentID returns the selected theme's identifier.
func (c *Catalog) CurrentID() string {
	return c.items[c.selected].ID
}

// Select picks a theme by id and reports whether it exists.
func (c *Catalog) Select(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.selected = i
			return true
		}
	}
	return false
}

// CycleNext advances the selection to the next theme, wrapping around.
func (c *Catalog) CycleNext() {
	c.selected = (c.selected + 1) % len(c.items)
}
