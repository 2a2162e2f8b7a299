// Package config provides configuration helpers for go-officeanim commands.
package config

import (
	"os"
	"strconv"
)

// Defaults.
const (
	DefaultPort     = "8090"
	DefaultScene    = "office"
	DefaultTickRate = 30.0
)

// Port returns the HTTP port from the PORT env var.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// SceneName returns the embedded scene name from SCENE.
func SceneName() string {
	if s := os.Getenv("SCENE"); s != "" {
		return s
	}
	return DefaultScene
}

// SceneFile returns an on-disk scene file path from SCENE_FILE.
// Empty means use the embedded scene named by SceneName.
func SceneFile() string {
	return os.Getenv("SCENE_FILE")
}

// TickRate returns the frame broadcast rate in Hz from TICK_RATE.
// Falls back to the default on missing or unparseable values.
func TickRate() float64 {
	v := os.Getenv("TICK_RATE")
	if v == "" {
		return DefaultTickRate
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil || rate <= 0 {
		return DefaultTickRate
	}
	return rate
}

// LogLevel returns the log level from LOG_LEVEL ("debug", "info", "warn",
// "error"); empty defaults to "info" downstream.
func LogLevel() string {
	return os.Getenv("LOG_LEVEL")
}
