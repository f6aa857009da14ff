package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	tests := []struct {
		id     SpriteID
		w, h   float64
		frames int
	}{
		{PlaneForward, 64, 64, 1},
		{PlaneRight, 64, 64, 1},
		{Enemy, 64, 64, 1},
		{Bullet, 8, 16, 1},
		{Explosion, 128, 128, 16},
	}
	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			w, h := a.Size(tc.id)
			if w != tc.w || h != tc.h {
				t.Errorf("Size() = %gx%g, expected %gx%g", w, h, tc.w, tc.h)
			}
			if got := a.FrameCount(tc.id); got != tc.frames {
				t.Errorf("FrameCount() = %d, expected %d", got, tc.frames)
			}
		})
	}
}

func TestMissingSprite(t *testing.T) {
	a, err := Parse([]byte("sprites:\n  - {id: bullet, width: 8, height: 16, frame_count: 1, art: [[\"|\"]]}\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	_, err = a.Get(Enemy)
	var missing *MissingSpriteError
	if !errors.As(err, &missing) || missing.ID != Enemy {
		t.Fatalf("Get(enemy) error = %v, expected MissingSpriteError", err)
	}

	if err := a.Require(Bullet, Explosion); !errors.As(err, &missing) || missing.ID != Explosion {
		t.Errorf("Require() error = %v", err)
	}

	if _, err := Load([]byte("sprites: []\n")); !errors.As(err, &missing) {
		t.Errorf("Load() of empty atlas should report a missing sprite, got %v", err)
	}
}

func TestInvalidSprite(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero size", "sprites:\n  - {id: enemy, width: 0, height: 64, frame_count: 1, art: [[\"x\"]]}\n"},
		{"no frames", "sprites:\n  - {id: enemy, width: 64, height: 64, frame_count: 0, art: [[\"x\"]]}\n"},
		{"no art", "sprites:\n  - {id: enemy, width: 64, height: 64, frame_count: 1}\n"},
		{"no id", "sprites:\n  - {width: 64, height: 64, frame_count: 1, art: [[\"x\"]]}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); !errors.Is(err, ErrInvalidSprite) {
				t.Errorf("Parse() error = %v, expected ErrInvalidSprite", err)
			}
		})
	}

	if _, err := Parse([]byte("sprites: [")); err == nil || errors.Is(err, ErrInvalidSprite) {
		t.Errorf("malformed YAML should fail with a parse error, got %v", err)
	}
}

func TestSpriteStage(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	s, _ := a.Get(Explosion)

	first := strings.Join(s.Stage(0), "\n")
	last := strings.Join(s.Stage(15), "\n")
	if first == last {
		t.Error("explosion should change over its frames")
	}
	if strings.Join(s.Stage(99), "\n") != last {
		t.Error("frames past the end should clamp to the last stage")
	}
	if strings.Join(s.Stage(-3), "\n") != first {
		t.Error("negative frames should clamp to the first stage")
	}
}
