package view

import "strconv"

// NoID is returned by AttributeSet.ID when a node declares no identifier.
const NoID = -1

// AttributeSet is the generic attribute bag handed to view constructors
// and filters during inflation. Values come from the layout document's
// JSON, so numbers arrive as float64.
type AttributeSet map[string]any

// ID returns the node's declared identifier, or NoID when absent.
func (a AttributeSet) ID() int {
	return a.Int("id", NoID)
}

// Has reports whether the attribute is present.
func (a AttributeSet) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Int returns the attribute as an int, or def when absent or unconvertible.
func (a AttributeSet) Int(key string, def int) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Float returns the attribute as a float64, or def when absent or
// unconvertible.
func (a AttributeSet) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// String returns the attribute as a string, or def when absent.
func (a AttributeSet) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the attribute as a bool, or def when absent.
func (a AttributeSet) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

// Color returns the attribute parsed as a "#RRGGBB" or "#AARRGGBB" hex
// string, or def when absent or malformed.
func (a AttributeSet) Color(key string, def Color) Color {
	s, ok := a[key].(string)
	if !ok || len(s) == 0 || s[0] != '#' {
		return def
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return def
	}
	switch len(s) {
	case 7: // #RRGGBB
		return RGB(uint32(v))
	case 9: // #AARRGGBB
		c := RGB(uint32(v) & 0xFFFFFF)
		c.A = float64((v>>24)&0xFF) / 255
		return c
	default:
		return def
	}
}
