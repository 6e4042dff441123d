package config

import (
	"image/color"
	"time"
)

// Config holds general client configuration
type Config struct {
	Width  int
	Height int
}

// NetConfig contains connection defaults
type NetConfig struct {
	ServerAddress string
	Version       string
	PlayerName    string
	EventBuffer   int // pending effect events kept between frames
	Spectator     bool
	RetryDelay    time.Duration
}

// HitZoneConfig contains the collision grid used for damage zone queries
type HitZoneConfig struct {
	SpaceWidth  int
	SpaceHeight int
	CellSize    int
}

// RenderConfig contains remote player drawing configuration
type RenderConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	LabelOffset     float64 // pixels above the sprite box
	BubblePadding   float64
	BubbleOffset    float64 // pixels between sprite top and bubble bottom
	BubbleColor     color.RGBA
	BubbleTextColor color.RGBA
	PlayerColors    []color.RGBA
	LaserColor      color.RGBA
	LaserCoreColor  color.RGBA
	TelepathyColor  color.RGBA
	DamageZoneColor color.RGBA
	InZoneColor     color.RGBA
}

// OverlayConfig holds the display toggles a user can flip at runtime
type OverlayConfig struct {
	ShowChatBubbles bool `json:"showChatBubbles"`
	ShowDamageZones bool `json:"showDamageZones"`
	ShowNameLabels  bool `json:"showNameLabels"`
	ShowHUD         bool `json:"showHUD"`
	ShowHitZones    bool `json:"showHitZones"`
}

// Global configuration instances
var C *Config
var Overlay OverlayConfig
var Net NetConfig
var HitZone HitZoneConfig
var Render RenderConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Net = NetConfig{
		ServerAddress: "localhost:8080",
		Version:       "0.1.0",
		PlayerName:    "spectator",
		EventBuffer:   64,
		Spectator:     true,
		RetryDelay:    2 * time.Second,
	}

	Overlay = OverlayConfig{
		ShowChatBubbles: true,
		ShowDamageZones: true,
		ShowNameLabels:  true,
		ShowHUD:         true,
	}

	HitZone = HitZoneConfig{
		SpaceWidth:  4096,
		SpaceHeight: 4096,
		CellSize:    32,
	}

	Render = RenderConfig{
		HealthBarWidth:  40,
		HealthBarHeight: 4,
		LabelOffset:     10,
		BubblePadding:   4,
		BubbleOffset:    18,
		BubbleColor:     color.RGBA{R: 255, G: 255, B: 255, A: 230},
		BubbleTextColor: color.RGBA{R: 20, G: 20, B: 20, A: 255},
		PlayerColors: []color.RGBA{
			{R: 255, G: 0, B: 0, A: 255},
			{R: 0, G: 100, B: 255, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
			{R: 0, G: 200, B: 200, A: 255},
		},
		LaserColor:      LightRed,
		LaserCoreColor:  White,
		TelepathyColor:  Purple,
		DamageZoneColor: Orange,
		InZoneColor:     Magenta,
	}
}
