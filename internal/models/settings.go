// ABOUTME: Global settings and bodyweight log models.
// ABOUTME: Bodyweight entries are keyed by calendar date, independent of sessions.
package models

// Theme is the presentation theme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Units is the load unit used for display and entry.
type Units string

const (
	UnitsKg Units = "kg"
	UnitsLb Units = "lb"
)

// Settings is the single global settings record.
type Settings struct {
	Theme Theme `json:"theme"`
	Units Units `json:"units"`
}

// DefaultSettings returns dark theme with kilograms.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark, Units: UnitsKg}
}

// BodyWeightEntry is one bodyweight measurement.
type BodyWeightEntry struct {
	ID      string  `json:"id"`
	DateISO string  `json:"dateISO"`
	Weight  float64 `json:"weight"`
	Unit    Units   `json:"unit"`
	Note    string  `json:"note,omitempty"`
}

// BodyWeightUpdate is a partial bodyweight edit. Nil fields are left unchanged.
type BodyWeightUpdate struct {
	DateISO *string
	Weight  *float64
	Unit    *Units
	Note    *string
}
