package config

import "time"

// KnockbackConfig contains knockback slide configuration
type KnockbackConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// InterpolationConfig contains network smoothing configuration
type InterpolationConfig struct {
	Alpha float64 `yaml:"alpha"` // fraction of the remaining gap closed per tick
}

// TeleportConfig contains teleport disappear/appear configuration
type TeleportConfig struct {
	Disappear      time.Duration `yaml:"disappear"`
	Appear         time.Duration `yaml:"appear"`
	DisappearScale float64       `yaml:"disappearScale"` // extra scale reached at the end of disappear
	DamageRadius   float64       `yaml:"damageRadius"`   // pixels
	DamageOpacity  float64       `yaml:"damageOpacity"`  // opacity of the radius indicator at appear start
}

// LaserConfig contains laser aim/fire configuration
type LaserConfig struct {
	Aim            time.Duration `yaml:"aim"`
	Fire           time.Duration `yaml:"fire"`
	Range          float64       `yaml:"range"` // cast distance in pixels
	AimOpacityBase float64       `yaml:"aimOpacityBase"`
	AimOpacityGain float64       `yaml:"aimOpacityGain"`
	AimWidthBase   float64       `yaml:"aimWidthBase"`
	AimWidthGain   float64       `yaml:"aimWidthGain"`
	GlowWidth      float64       `yaml:"glowWidth"`
	CoreWidth      float64       `yaml:"coreWidth"`
	FireFade       float64       `yaml:"fireFade"`   // opacity lost over the fire phase
	GlowWeight     float64       `yaml:"glowWeight"` // glow opacity relative to core
	DashLength     float64       `yaml:"dashLength"`
	DashGap        float64       `yaml:"dashGap"`
}

// TelepathyConfig contains telepathy pulse configuration
type TelepathyConfig struct {
	Duration       time.Duration `yaml:"duration"`
	PulseAmplitude float64       `yaml:"pulseAmplitude"` // fraction of the base radius
	PulseCycles    float64       `yaml:"pulseCycles"`    // full sine periods over the effect
	FillOpacity    float64       `yaml:"fillOpacity"`
	BorderOpacity  float64       `yaml:"borderOpacity"`
}

// HitFlashConfig contains damage flash configuration
type HitFlashConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// ChatConfig contains chat bubble configuration
type ChatConfig struct {
	Duration time.Duration `yaml:"duration"`
	Fade     time.Duration `yaml:"fade"` // tail of Duration over which the bubble fades out
}

// DisplayConfig contains remote player sprite sizing
type DisplayConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"` // sprites are scaled to this height, keeping aspect ratio
}

// EffectsConfig groups every timing and shape constant of the remote
// player effect machines.
type EffectsConfig struct {
	Knockback     KnockbackConfig     `yaml:"knockback"`
	Interpolation InterpolationConfig `yaml:"interpolation"`
	Teleport      TeleportConfig      `yaml:"teleport"`
	Laser         LaserConfig         `yaml:"laser"`
	Telepathy     TelepathyConfig     `yaml:"telepathy"`
	HitFlash      HitFlashConfig      `yaml:"hitFlash"`
	Chat          ChatConfig          `yaml:"chat"`
	Display       DisplayConfig       `yaml:"display"`
}

var Effects EffectsConfig

func init() {
	Effects = DefaultEffects()
}

// DefaultEffects returns the stock tuning.
func DefaultEffects() EffectsConfig {
	return EffectsConfig{
		Knockback: KnockbackConfig{
			Duration: 200 * time.Millisecond,
		},
		Interpolation: InterpolationConfig{
			Alpha: 0.2,
		},
		Teleport: TeleportConfig{
			Disappear:      150 * time.Millisecond,
			Appear:         200 * time.Millisecond,
			DisappearScale: 0.5,
			DamageRadius:   100,
			DamageOpacity:  0.4,
		},
		Laser: LaserConfig{
			Aim:            1000 * time.Millisecond,
			Fire:           200 * time.Millisecond,
			Range:          2000,
			AimOpacityBase: 0.3,
			AimOpacityGain: 0.5,
			AimWidthBase:   2,
			AimWidthGain:   2,
			GlowWidth:      20,
			CoreWidth:      6,
			FireFade:       0.5,
			GlowWeight:     0.5,
			DashLength:     10,
			DashGap:        10,
		},
		Telepathy: TelepathyConfig{
			Duration:       3000 * time.Millisecond,
			PulseAmplitude: 0.1,
			PulseCycles:    2, // sin(progress * 4pi)
			FillOpacity:    0.3,
			BorderOpacity:  0.8,
		},
		HitFlash: HitFlashConfig{
			Duration: 100 * time.Millisecond,
		},
		Chat: ChatConfig{
			Duration: 3000 * time.Millisecond,
			Fade:     500 * time.Millisecond,
		},
		Display: DisplayConfig{
			Width:  48,
			Height: 64,
		},
	}
}
