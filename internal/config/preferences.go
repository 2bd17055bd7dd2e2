package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/domain"
)

// Preferences holds user-level settings for the tipcredit CLI.
type Preferences struct {
	Defaults DefaultsPreferences `toml:"defaults"`
	Output   OutputPreferences   `toml:"output"`
}

// DefaultsPreferences overrides the built-in input defaults.
type DefaultsPreferences struct {
	HoursPerMonth int             `toml:"hours_per_month"`
	MinWageBasis  decimal.Decimal `toml:"min_wage_basis"`
}

// OutputPreferences holds report settings.
type OutputPreferences struct {
	Format string `toml:"format"`
	Theme  string `toml:"theme"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() Preferences {
	return Preferences{
		Defaults: DefaultsPreferences{
			HoursPerMonth: calculation.DefaultHoursPerMonth,
			MinWageBasis:  calculation.DefaultMinWageBasis,
		},
		Output: OutputPreferences{
			Format: "console",
			Theme:  "flexoki-dark",
		},
	}
}

// InputDefaults converts the preference values into calculator defaults.
// Hours below 1 and a negative minimum wage fall back to the built-ins;
// a zero minimum wage basis is kept.
func (p Preferences) InputDefaults() domain.InputDefaults {
	d := calculation.DefaultInputDefaults()
	if p.Defaults.HoursPerMonth > 0 {
		d.HoursPerMonth = p.Defaults.HoursPerMonth
	}
	if !p.Defaults.MinWageBasis.IsNegative() {
		d.MinWageBasis = p.Defaults.MinWageBasis
	}
	return d
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tipcredit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tipcredit")
}

// Path returns the full path to the preferences file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists returns true if a preferences file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
// TIPCREDIT_FORMAT overrides the configured output format.
func LoadPreferences() (Preferences, error) {
	prefs, err := loadPreferencesFrom(Path())
	if format := os.Getenv("TIPCREDIT_FORMAT"); format != "" {
		prefs.Output.Format = format
	}
	return prefs, err
}

func loadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("parsing preferences: %w", err)
	}

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}
