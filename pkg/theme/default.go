package theme

import (
	_ "embed"
	"sync"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
	defaultErr   error
)

// Default returns the built-in theme. It is parsed once and validated.
func Default() (*Theme, error) {
	defaultOnce.Do(func() {
		defaultTheme, defaultErr = LoadYAML(defaultYAML)
		if defaultErr == nil {
			defaultErr = defaultTheme.Validate()
		}
	})
	return defaultTheme, defaultErr
}

// DefaultYAML returns the source of the built-in stylesheet.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
