package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file on top of the stock effect tuning.
// Keys missing from the file keep their default value. Durations are
// written as Go duration strings ("200ms", "3s").
func LoadTuning(path string) (*EffectsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes YAML tuning data on top of the stock effect tuning.
func ParseTuning(data []byte) (*EffectsConfig, error) {
	tuning := DefaultEffects()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	return &tuning, nil
}

// Validate checks that every duration is positive and the smoothing factor
// lies in (0, 1].
func (c *EffectsConfig) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"knockback.duration", c.Knockback.Duration},
		{"teleport.disappear", c.Teleport.Disappear},
		{"teleport.appear", c.Teleport.Appear},
		{"laser.aim", c.Laser.Aim},
		{"laser.fire", c.Laser.Fire},
		{"telepathy.duration", c.Telepathy.Duration},
		{"hitFlash.duration", c.HitFlash.Duration},
		{"chat.duration", c.Chat.Duration},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", d.name, d.d)
		}
	}

	if c.Chat.Fade < 0 || c.Chat.Fade > c.Chat.Duration {
		return fmt.Errorf("chat.fade must be within [0, chat.duration], got %v", c.Chat.Fade)
	}
	if c.Interpolation.Alpha <= 0 || c.Interpolation.Alpha > 1 {
		return fmt.Errorf("interpolation.alpha must be in (0, 1], got %v", c.Interpolation.Alpha)
	}
	if c.Laser.Range <= 0 {
		return fmt.Errorf("laser.range must be positive, got %v", c.Laser.Range)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %vx%v", c.Display.Width, c.Display.Height)
	}
	return nil
}
