// Package config loads the quaddiff settings from an optional .env file and
// the QUADDIFF_* environment variables. Environment variables win over the
// file; anything unset keeps its default.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	quadtree "github.com/robert-butts/quaddiff"
)

const prefix = "QUADDIFF_"

// MaxSurface caps each surface dimension. Frames are rasterised one pixel
// per unit.
const MaxSurface = 16384

// Config holds everything the driver and renderer need to start.
type Config struct {
	SurfaceWidth  float64
	SurfaceHeight float64
	Depth         int

	ShapeWidth  float64
	ShapeHeight float64
	ShapeAngle  float64

	MoveStep   float64
	ResizeStep float64
	RotateStep float64

	ShowQuadtree   bool
	ShowChangetree bool
	ShowPoints     bool
	// LeavesOnly draws changed subtrees by their leaves instead of every node.
	LeavesOnly bool

	Format    string
	OutputDir string

	TreeColor       string
	AddedColor      string
	RemovedColor    string
	PointColor      string
	BackgroundColor string
}

// Default returns the stock session settings: a 900x900
// surface, depth 9 and a 50x100 rectangle in the middle.
func Default() Config {
	return Config{
		SurfaceWidth:    900,
		SurfaceHeight:   900,
		Depth:           9,
		ShapeWidth:      50,
		ShapeHeight:     100,
		MoveStep:        10,
		ResizeStep:      10,
		RotateStep:      0.05,
		ShowQuadtree:    true,
		ShowChangetree:  true,
		ShowPoints:      true,
		LeavesOnly:      true,
		Format:          "png",
		OutputDir:       "frames",
		TreeColor:       "#0000FF",
		AddedColor:      "#00FF00",
		RemovedColor:    "#FF0000",
		PointColor:      "#FFFFFF",
		BackgroundColor: "#000000",
	}
}

// Load reads envFile if it exists, then the process environment.
func Load(envFile string) (*Config, error) {
	file := map[string]string{}
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if file, err = godotenv.Read(envFile); err != nil {
				return nil, errors.Wrapf(err, "reading %s", envFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat %s", envFile)
		}
	}
	return Parse(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	})
}

// Parse builds a Config from lookup, which is asked for QUADDIFF_* keys.
func Parse(lookup func(key string) (string, bool)) (*Config, error) {
	c := Default()
	p := parser{lookup: lookup}

	p.floatVar("SURFACE_WIDTH", &c.SurfaceWidth)
	p.floatVar("SURFACE_HEIGHT", &c.SurfaceHeight)
	p.intVar("DEPTH", &c.Depth)
	p.floatVar("SHAPE_WIDTH", &c.ShapeWidth)
	p.floatVar("SHAPE_HEIGHT", &c.ShapeHeight)
	p.floatVar("SHAPE_ANGLE", &c.ShapeAngle)
	p.floatVar("MOVE_STEP", &c.MoveStep)
	p.floatVar("RESIZE_STEP", &c.ResizeStep)
	p.floatVar("ROTATE_STEP", &c.RotateStep)
	p.boolVar("SHOW_QUADTREE", &c.ShowQuadtree)
	p.boolVar("SHOW_CHANGETREE", &c.ShowChangetree)
	p.boolVar("SHOW_POINTS", &c.ShowPoints)
	p.boolVar("LEAVES_ONLY", &c.LeavesOnly)
	p.stringVar("FORMAT", &c.Format)
	p.stringVar("OUTPUT_DIR", &c.OutputDir)
	p.stringVar("TREE_COLOR", &c.TreeColor)
	p.stringVar("ADDED_COLOR", &c.AddedColor)
	p.stringVar("REMOVED_COLOR", &c.RemovedColor)
	p.stringVar("POINT_COLOR", &c.PointColor)
	p.stringVar("BACKGROUND_COLOR", &c.BackgroundColor)
	if p.err != nil {
		return nil, p.err
	}

	c.Format = strings.ToLower(c.Format)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Overrides are settings given on the command line. A nil field was not
// given and leaves the loaded value alone.
type Overrides struct {
	Depth     *int
	Format    *string
	OutputDir *string
}

// Apply copies the given overrides into c and validates the result. Values
// are treated like their QUADDIFF_* counterparts.
func (c *Config) Apply(o Overrides) error {
	if o.Depth != nil {
		c.Depth = *o.Depth
	}
	if o.Format != nil {
		c.Format = strings.ToLower(strings.TrimSpace(*o.Format))
	}
	if o.OutputDir != nil {
		c.OutputDir = *o.OutputDir
	}
	return c.Validate()
}

// Validate checks that the settings can drive a session.
func (c *Config) Validate() error {
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return errors.Errorf("surface %gx%g must be positive", c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.SurfaceWidth > MaxSurface || c.SurfaceHeight > MaxSurface {
		return errors.Errorf("surface %gx%g exceeds %dx%d", c.SurfaceWidth, c.SurfaceHeight, MaxSurface, MaxSurface)
	}
	if c.Depth < 1 || c.Depth > quadtree.MaxDepth {
		return errors.Wrapf(quadtree.ErrInvalidDepth, "depth %d outside [1,%d]", c.Depth, quadtree.MaxDepth)
	}
	switch c.Format {
	case "png", "svg":
	default:
		return errors.Errorf("unknown output format %q", c.Format)
	}
	for name, hex := range map[string]string{
		"tree":       c.TreeColor,
		"added":      c.AddedColor,
		"removed":    c.RemovedColor,
		"point":      c.PointColor,
		"background": c.BackgroundColor,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return errors.Wrapf(err, "%s color %q", name, hex)
		}
	}
	return nil
}

// Surface is the drawing surface as a bounding box anchored at the origin.
func (c *Config) Surface() quadtree.BoundingBox {
	return quadtree.BoundingBox{Right: c.SurfaceWidth, Bottom: c.SurfaceHeight}
}

type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) get(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(prefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (p *parser) floatVar(key string, dst *float64) {
	if v, ok := p.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			p.err = errors.Wrapf(err, "%s%s", prefix, key)
			return
		}
		*dst = f
	}
}

func (p *parser) intVar(key string, dst *int) {
	if v, ok := p.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.err = errors.Wrapf(err, "%s%s", prefix, key)
			return
		}
		*dst = n
	}
}

func (p *parser) boolVar(key string, dst *bool) {
	if v, ok := p.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.err = errors.Wrapf(err, "%s%s", prefix, key)
			return
		}
		*dst = b
	}
}

func (p *parser) stringVar(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}
