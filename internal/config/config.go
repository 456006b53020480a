// Package config loads the CLI configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, or $XDG_CONFIG_HOME/outstanding/config.toml
//  3. OUTSTANDING_* environment variables (OUTSTANDING_UNKNOWN_TAGS sets
//     unknown_tags)
//  4. command line overrides
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	outerrors "github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment variables read by Load.
const EnvPrefix = "OUTSTANDING_"

// Config is the resolved CLI configuration.
type Config struct {
	Output      string `koanf:"output" validate:"oneof=auto term text term-debug"`
	Width       int    `koanf:"width" validate:"gte=0"`
	UnknownTags string `koanf:"unknown_tags" validate:"oneof=passthrough strip"`
	ColorMode   string `koanf:"color_mode" validate:"oneof=auto dark light"`
	Separator   string `koanf:"separator"`
	Theme       string `koanf:"theme"`
	Ellipsis    string `koanf:"ellipsis" validate:"max_width=8"`
}

// Options controls where Load looks.
type Options struct {
	// Path is an explicit config file, which must exist. Empty means the
	// XDG location, which may be missing.
	Path string
	// Overrides are applied last, keyed like the config file.
	Overrides map[string]interface{}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// DefaultContent returns the embedded defaults file, for documentation.
func DefaultContent() string {
	return string(defaultConfig)
}

// Load merges all sources and validates the result.
func Load(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, outerrors.Wrap(err, outerrors.ErrConfigParse, "failed to load defaults")
	}

	path, required := opts.Path, true
	if path == "" {
		path, required = DefaultPath(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, outerrors.Wrapf(err, outerrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, outerrors.Wrapf(err, outerrors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, outerrors.Wrap(err, outerrors.ErrConfigLoad, "failed to read environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, outerrors.Wrap(err, outerrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, outerrors.Wrap(err, outerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	log.Trace().Interface("config", cfg).Msg("Configuration loaded")
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
