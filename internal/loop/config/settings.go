package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/gravityquest/internal/quest"
)

// Demo selects one of the three playable variants.
type Demo string

const (
	DemoGravity   Demo = "gravity"   // Asteroids only, fixed camera
	DemoCollision Demo = "collision" // Adds novae
	DemoVisuals   Demo = "visuals"   // Larger world, camera follow, particles, animations
)

// Demos lists the variants in menu order.
var Demos = []Demo{DemoGravity, DemoCollision, DemoVisuals}

// ErrUnknownDemo is returned for a demo name that is not in Demos.
var ErrUnknownDemo = errors.New("unknown demo")

// ParseDemo validates a demo name.
func ParseDemo(name string) (Demo, error) {
	for _, d := range Demos {
		if string(d) == name {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Size is a width/height pair in world units.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Spawn controls scene population.
type Spawn struct {
	Asteroids int `yaml:"asteroids"`
	Novae     int `yaml:"novae"`
	Margin    int `yaml:"margin"` // Keep bodies this far from the world edge
}

// Settings is the full scene configuration.
type Settings struct {
	Demo      Demo         `yaml:"demo"`
	World     Size         `yaml:"world"`
	Spawn     Spawn        `yaml:"spawn"`
	Targeting quest.Tuning `yaml:"targeting"`
}

// DefaultSettings returns the stock settings of a demo.
func DefaultSettings(demo Demo) Settings {
	s := Settings{
		Demo:      demo,
		World:     Size{Width: ViewWidth, Height: ViewHeight},
		Spawn:     Spawn{Asteroids: 7, Novae: 3, Margin: 100},
		Targeting: quest.DefaultTuning(),
	}
	switch demo {
	case DemoGravity:
		s.Spawn.Novae = 0
	case DemoVisuals:
		s.World = Size{Width: 1280, Height: 960}
	}
	return s
}

// Visuals reports whether the camera, particles and animations are on.
func (s Settings) Visuals() bool {
	return s.Demo == DemoVisuals
}

// Validate checks that a scene can be built from the settings.
func (s Settings) Validate() error {
	if _, err := ParseDemo(string(s.Demo)); err != nil {
		return err
	}
	if s.World.Width <= 0 || s.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", s.World.Width, s.World.Height)
	}
	if s.Spawn.Asteroids < 0 || s.Spawn.Novae < 0 {
		return fmt.Errorf("spawn counts must not be negative")
	}
	if s.Spawn.Margin < 0 || 2*s.Spawn.Margin > s.World.Width || 2*s.Spawn.Margin > s.World.Height {
		return fmt.Errorf("spawn margin %d does not fit a %dx%d world", s.Spawn.Margin, s.World.Width, s.World.Height)
	}
	if err := s.Targeting.Validate(); err != nil {
		return fmt.Errorf("targeting: %w", err)
	}
	return nil
}

// LoadSettings reads YAML settings. Fields missing from the document keep the
// defaults of the demo it names (or fallback when it names none).
func LoadSettings(r io.Reader, fallback Demo) (Settings, error) {
	var head struct {
		Demo Demo `yaml:"demo"`
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	demo := fallback
	if head.Demo != "" {
		demo = head.Demo
	}
	if _, err := ParseDemo(string(demo)); err != nil {
		return Settings{}, err
	}

	s := DefaultSettings(demo)
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s.Demo = demo
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettingsFile reads settings from a YAML file.
func LoadSettingsFile(path string, fallback Demo) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s, err := LoadSettings(f, fallback)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Resolve picks the settings for a run: the file at path when one is given,
// the stock settings of demo otherwise. An empty demo means DemoCollision.
func Resolve(path, demo string) (Settings, error) {
	if demo == "" {
		demo = string(DemoCollision)
	}
	d, err := ParseDemo(demo)
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		return LoadSettingsFile(path, d)
	}
	return DefaultSettings(d), nil
}
