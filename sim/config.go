package sim

// Config selects the optional overlays. The full set is the default; a
// bare orbit view is all flags off.
type Config struct {
	ShowIndicator     bool
	ShowEarthMoonLine bool
	AllowCenterMoon   bool
}

// DefaultConfig enables the full overlay set.
func DefaultConfig() Config {
	return Config{
		ShowIndicator:     true,
		ShowEarthMoonLine: true,
		AllowCenterMoon:   true,
	}
}
