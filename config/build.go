package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/phraims/icoforge/logging"
)

var validate = validator.New()

// BuildConfig holds the settings for a single icon build.
// The zero value bound through BindWithDefaults reproduces the
// conventional layout: phraims.iconset in the working directory,
// resources/phraims.ico as output.
type BuildConfig struct {
	// IconsetDir is the directory holding the conventionally named PNGs.
	IconsetDir string `mapstructure:"iconset-dir" json:"iconsetDir" yaml:"iconset-dir" default:"phraims.iconset" validate:"required"`

	// Output is the path of the .ico file to produce.
	Output string `mapstructure:"output" json:"output" yaml:"output" default:"resources/phraims.ico" validate:"required"`

	// SynthesizedSizes are square sizes generated from the largest
	// source when it is present. Windows wants 48x48, which iconsets
	// conventionally omit.
	SynthesizedSizes []int `mapstructure:"synthesized-sizes" json:"synthesizedSizes" yaml:"synthesized-sizes" default:"[48]" validate:"dive,min=1,max=256"`

	// Report enables writing a JSON build report next to the output.
	Report bool `mapstructure:"report" json:"report" yaml:"report"`

	// Logging configures the diagnostic output.
	Logging logging.Config `mapstructure:"logging" json:"logging" yaml:"logging"`
}

// Validate implements the Validator interface.
func (c *BuildConfig) Validate() error {
	return validate.Struct(c)
}

// LoadBuild loads the BuildConfig from the default config location,
// falling back to struct defaults when no config file exists.
func LoadBuild(optsArr ...Options) (*BuildConfig, error) {
	cfg, err := New(optsArr...)
	if err != nil {
		return nil, err
	}

	var build BuildConfig
	if err := cfg.BindWithDefaults(&build); err != nil {
		return nil, err
	}

	return &build, nil
}
