package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-fx/config"
	"github.com/quasilyte/gdata"
)

const overlayItem = "overlay"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-fx",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadOverlay reads saved overlay toggles. It returns nil when nothing was
// saved or persistence is unavailable.
func LoadOverlay() (*cfg.OverlayConfig, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(overlayItem)
	if err != nil {
		log.Printf("Warning: Could not load overlay settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var overlay cfg.OverlayConfig
	if err := json.Unmarshal(data, &overlay); err != nil {
		log.Printf("Warning: Could not parse saved overlay settings: %v", err)
		return nil, err
	}
	return &overlay, nil
}

// SaveOverlay writes the current overlay toggles to disk. Failures are logged
// here, so callers may ignore the error.
func SaveOverlay(o cfg.OverlayConfig) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(o)
	if err != nil {
		log.Printf("Warning: Could not serialize overlay settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(overlayItem, data); err != nil {
		log.Printf("Warning: Could not save overlay settings: %v", err)
		return err
	}
	return nil
}
