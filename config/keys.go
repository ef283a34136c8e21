package config

const (
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyUp        = "up"
	KeyDown      = "down"
	KeySpace     = "space"
	KeyEnter     = "enter"
	KeyEscape    = "escape"
	KeyBackspace = "backspace"
	KeyTab       = "tab"
)

var namedKeys = map[string]bool{
	KeyLeft:      true,
	KeyRight:     true,
	KeyUp:        true,
	KeyDown:      true,
	KeySpace:     true,
	KeyEnter:     true,
	KeyEscape:    true,
	KeyBackspace: true,
	KeyTab:       true,
}

// IsKeyName accepts the named keys above and single lowercase letters.
func IsKeyName(name string) bool {
	if namedKeys[name] {
		return true
	}
	return len(name) == 1 && name[0] >= 'a' && name[0] <= 'z'
}
