package host

import "fmt"

// ConfigError reports a problem with the options passed to Open, caught
// before any term.Engine is constructed — per spec.md, no partial engine
// is ever created.
type ConfigError struct {
	Field string
	Value string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("host: config %s=%q: %s", e.Field, e.Value, e.Msg)
}

func badSelector(sel string) error {
	return &ConfigError{Field: "selector", Value: sel, Msg: "required, must be non-empty"}
}

func badPalette(name string) error {
	return &ConfigError{Field: "palette", Value: name, Msg: "must be CGA or VGA"}
}
