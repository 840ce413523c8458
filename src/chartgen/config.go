package chartgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOptions mirrors Options for the optional YAML override file. Anchors
// are pointers so an explicit 0 can be told apart from "not set".
type fileOptions struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Title   string   `yaml:"title"`
	AnchorX *float64 `yaml:"anchor_x"`
	AnchorY *float64 `yaml:"anchor_y"`
}

// LoadOptions returns DefaultOptions overridden by the YAML file at path.
// An empty path means no override file.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	var fo fileOptions
	if err := yaml.Unmarshal(b, &fo); err != nil {
		return Options{}, fmt.Errorf("parse options %s: %w", path, err)
	}
	if fo.Width != 0 {
		opts.Width = fo.Width
	}
	if fo.Height != 0 {
		opts.Height = fo.Height
	}
	if fo.Title != "" {
		opts.Title = fo.Title
	}
	if fo.AnchorX != nil {
		opts.AnchorX = *fo.AnchorX
	}
	if fo.AnchorY != nil {
		opts.AnchorY = *fo.AnchorY
	}
	if err := opts.validate(); err != nil {
		return Options{}, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.AnchorX < 0 || o.AnchorX > 1 || o.AnchorY < 0 || o.AnchorY > 1 {
		return fmt.Errorf("anchor must be within [0,1], got (%g, %g)", o.AnchorX, o.AnchorY)
	}
	return nil
}
