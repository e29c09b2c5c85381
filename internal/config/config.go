package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/schem"
)

type Config struct {
	Width  int `envconfig:"SCHEM_WIDTH" default:"800"`
	Height int `envconfig:"SCHEM_HEIGHT" default:"600"`

	Scale     float64 `envconfig:"SCHEM_SCALE" default:"1"`
	Rotation  float64 `envconfig:"SCHEM_ROTATION" default:"0"`
	GridSpace float64 `envconfig:"SCHEM_GRID" default:"16"`
	Snap      bool    `envconfig:"SCHEM_SNAP" default:"false"`

	WireLimBase   float64 `envconfig:"SCHEM_WIRELIM_BASE" default:"2"`
	WireLimRange  float64 `envconfig:"SCHEM_WIRELIM_RANGE" default:"8"`
	WireLimOffset float64 `envconfig:"SCHEM_WIRELIM_OFFSET" default:"0.05"`

	Manhattan bool `envconfig:"SCHEM_MANHATTAN" default:"false"`
	ExactBBox bool `envconfig:"SCHEM_EXACT_BBOX" default:"false"`
	Verbose   bool `envconfig:"SCHEM_VERBOSE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// View builds the view context described by the configuration.
func (c *Config) View() *schem.ViewContext {
	v := schem.NewViewContext(c.Width, c.Height)
	v.Scale = c.Scale
	v.Rotation = c.Rotation
	v.GridSpace = c.GridSpace
	v.Snap = c.Snap
	v.WireLimBase = c.WireLimBase
	v.WireLimRange = c.WireLimRange
	v.WireLimOffset = c.WireLimOffset
	return v
}
