package view

// Theme is the color scheme stored in the "theme" cookie.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ThemeCookie is the cookie the theme toggle writes.
const ThemeCookie = "theme"

// ParseTheme maps a cookie value to a Theme; anything unknown follows the
// system preference.
func ParseTheme(v string) Theme {
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		return Theme(v)
	}
	return ThemeSystem
}

// Class is the class set on <html>. The system theme is resolved client side.
func (t Theme) Class() string {
	if t == ThemeSystem || t == "" {
		return ""
	}
	return string(t)
}

// Toggled is the theme the toggle switches to.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
