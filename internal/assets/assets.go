// Package assets loads the sprite atlas used by the duel arena.
// Sprites are addressed by SpriteID handles; entities store a handle and
// never own sprite data.
package assets

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sprites.yaml
var defaultAtlasYAML []byte

// SpriteID is a handle into the atlas.
type SpriteID string

const (
	PlaneForward  SpriteID = "plane_forward"
	PlaneLeft     SpriteID = "plane_left"
	PlaneBackward SpriteID = "plane_backward"
	PlaneRight    SpriteID = "plane_right"
	Enemy         SpriteID = "enemy"
	Bullet        SpriteID = "bullet"
	Explosion     SpriteID = "explosion"
)

// Required lists the handles the arena cannot run without.
var Required = []SpriteID{
	PlaneForward, PlaneLeft, PlaneBackward, PlaneRight,
	Enemy, Bullet, Explosion,
}

// ErrInvalidSprite is returned when an atlas entry has unusable geometry or art.
var ErrInvalidSprite = errors.New("assets: invalid sprite")

// MissingSpriteError reports a handle that is not present in the atlas.
type MissingSpriteError struct {
	ID SpriteID
}

func (e *MissingSpriteError) Error() string {
	return fmt.Sprintf("assets: missing sprite %q", string(e.ID))
}

// Sprite is one atlas entry.
type Sprite struct {
	ID         SpriteID   `yaml:"id"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	FrameCount int        `yaml:"frame_count"`
	Art        [][]string `yaml:"art"`
}

// Stage returns the art lines shown at the given animation frame.
// Frames outside [0, FrameCount) are clamped.
func (s Sprite) Stage(frame int) []string {
	if len(s.Art) == 0 {
		return nil
	}
	frame = max(0, min(frame, s.FrameCount-1))
	idx := frame * len(s.Art) / max(s.FrameCount, 1)
	return s.Art[min(idx, len(s.Art)-1)]
}

// Atlas maps handles to sprites.
type Atlas struct {
	sprites map[SpriteID]Sprite
}

type atlasFile struct {
	Sprites []Sprite `yaml:"sprites"`
}

// Parse decodes an atlas from YAML and validates every entry.
func Parse(data []byte) (*Atlas, error) {
	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: parse atlas: %w", err)
	}

	a := &Atlas{sprites: make(map[SpriteID]Sprite, len(f.Sprites))}
	for _, s := range f.Sprites {
		if err := validate(s); err != nil {
			return nil, err
		}
		a.sprites[s.ID] = s
	}
	return a, nil
}

// Load parses the atlas and checks that every required handle is present.
func Load(data []byte) (*Atlas, error) {
	a, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := a.Require(Required...); err != nil {
		return nil, err
	}
	return a, nil
}

// Default loads the embedded atlas.
func Default() (*Atlas, error) {
	return Load(defaultAtlasYAML)
}

func validate(s Sprite) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidSprite)
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: %s has size %gx%g", ErrInvalidSprite, s.ID, s.Width, s.Height)
	case s.FrameCount < 1:
		return fmt.Errorf("%w: %s has %d frames", ErrInvalidSprite, s.ID, s.FrameCount)
	case len(s.Art) == 0:
		return fmt.Errorf("%w: %s has no art", ErrInvalidSprite, s.ID)
	}
	return nil
}

// Get looks up a sprite by handle.
func (a *Atlas) Get(id SpriteID) (Sprite, error) {
	s, ok := a.sprites[id]
	if !ok {
		return Sprite{}, &MissingSpriteError{ID: id}
	}
	return s, nil
}

// Require returns the first missing handle as a *MissingSpriteError.
func (a *Atlas) Require(ids ...SpriteID) error {
	for _, id := range ids {
		if _, err := a.Get(id); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the sprite's extent in arena units, or zero for unknown handles.
func (a *Atlas) Size(id SpriteID) (w, h float64) {
	s := a.sprites[id]
	return s.Width, s.Height
}

// FrameCount returns the number of animation frames, at least 1.
func (a *Atlas) FrameCount(id SpriteID) int {
	return max(a.sprites[id].FrameCount, 1)
}
