package theme

import "context"

type darkModeKeyType struct{}

var darkModeKey = darkModeKeyType{}

type themeKeyType struct{}

var themeKey = themeKeyType{}

// WithDarkMode returns a new context carrying the dark mode flag.
func WithDarkMode(ctx context.Context, darkMode bool) context.Context {
	return context.WithValue(ctx, darkModeKey, darkMode)
}

// DarkModeFromContext returns the dark mode flag of the context, false if not set.
func DarkModeFromContext(ctx context.Context) bool {
	darkMode, _ := ctx.Value(darkModeKey).(bool)
	return darkMode
}

// WithTheme returns a new context carrying the theme.
func WithTheme(ctx context.Context, t *Theme) context.Context {
	return context.WithValue(ctx, themeKey, t)
}

// FromContext returns the theme of the context or the default theme if none is set.
func FromContext(ctx context.Context) *Theme {
	if t, ok := ctx.Value(themeKey).(*Theme); ok && t != nil {
		return t
	}
	return Default()
}
