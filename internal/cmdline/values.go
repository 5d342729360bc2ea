package cmdline

// Values is the bag of parsed argument values handed to constructors and
// operation handlers. Keys are parameter names in underscore form. Getters
// return the zero value when the key is absent or holds a different type;
// grammar derivation guarantees the types line up for values produced by a
// parse.
type Values map[string]any

// Has reports whether a value is present under name.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value stored under name.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the int value stored under name.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Float returns the float value stored under name.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the bool value stored under name.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// StringSlice returns the string list stored under name.
func (v Values) StringSlice(name string) []string {
	s, _ := v[name].([]string)
	return s
}

// IntSlice returns the int list stored under name.
func (v Values) IntSlice(name string) []int {
	s, _ := v[name].([]int)
	return s
}
