package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// ViewerConfig persists window geometry and panel layout between runs. The
// lighting state itself is deliberately not saved: every session starts with
// the simulation off.
type ViewerConfig struct {
	WindowWidth  int32 `json:"window_width"`
	WindowHeight int32 `json:"window_height"`

	ShowDaylightPanel   bool        `json:"show_daylight_panel"`
	DaylightPanelLayout PanelLayout `json:"daylight_panel_layout"`
}

// Load viewer configuration from file
func loadConfig() {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		fmt.Println("No config file found, using defaults")
		saveConfig() // Create default config file
		return
	}

	var config ViewerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		return
	}

	if config.WindowWidth > 0 && config.WindowHeight > 0 {
		eng.Width = config.WindowWidth
		eng.Height = config.WindowHeight
	}
	showDaylightPanel = config.ShowDaylightPanel
	if config.DaylightPanelLayout.SizeX > 0 {
		daylightPanelLayout = config.DaylightPanelLayout
	}
}

// Save viewer configuration to file
func saveConfig() {
	config := ViewerConfig{
		ShowDaylightPanel:   showDaylightPanel,
		DaylightPanelLayout: daylightPanelLayout,
	}
	if eng != nil {
		config.WindowWidth = eng.Width
		config.WindowHeight = eng.Height
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		fmt.Printf("Error serializing config: %v\n", err)
		return
	}

	if err := ioutil.WriteFile(configPath, data, 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
	}
}
