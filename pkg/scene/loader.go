package scene

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/ambientworks/go-officeanim/pkg/animate"
)

//go:embed data/*.yaml
var embeddedScenes embed.FS

// LoadEmbedded loads a scene from the embedded defaults.
func LoadEmbedded(name string) (*Scene, error) {
	data, err := embeddedScenes.ReadFile(fmt.Sprintf("data/%s.yaml", name))
	if err != nil {
		return nil, fmt.Errorf("scene %q not found: %w", name, err)
	}
	return parseSceneYAML(name, data)
}

// ListEmbedded returns the names of all embedded scenes.
func ListEmbedded() ([]string, error) {
	entries, err := embeddedScenes.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded scenes: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}
	return names, nil
}

// LoadFromFile loads a scene from a YAML file on disk. This is how users
// author custom office layouts.
func LoadFromFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parseSceneYAML(name, data)
}

// LoadFromDirectory loads every *.yaml scene in a directory.
func LoadFromDirectory(dir string) ([]*Scene, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}

	var scenes []*Scene
	for _, file := range files {
		s, err := LoadFromFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}

// parseSceneYAML parses and validates a scene. Validation is fail-fast:
// a scene with any bad entity is rejected whole rather than partially
// loaded with a degenerate avatar.
func parseSceneYAML(name string, data []byte) (*Scene, error) {
	var raw SceneData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	if len(raw.Entities) == 0 {
		return nil, fmt.Errorf("scene %q has no entities", name)
	}

	seen := make(map[string]bool, len(raw.Entities))
	entities := make([]*Entity, 0, len(raw.Entities))
	for i, ed := range raw.Entities {
		if ed.Name == "" {
			return nil, fmt.Errorf("scene %q: entity %d has no name", name, i)
		}
		if seen[ed.Name] {
			return nil, fmt.Errorf("scene %q: duplicate entity name %q", name, ed.Name)
		}
		seen[ed.Name] = true

		waypoints := make([]mgl64.Vec3, len(ed.Waypoints))
		for j, wp := range ed.Waypoints {
			waypoints[j] = mgl64.Vec3{wp[0], wp[1], wp[2]}
		}

		entity, err := NewEntity(ed.Name, ed.Label, waypoints, animate.CycleConfig{
			ForwardSeconds: ed.ForwardSeconds,
			DwellSeconds:   ed.DwellSeconds,
			OffsetSeconds:  ed.OffsetSeconds,
			BobAmplitude:   ed.BobAmplitude,
			BobFrequency:   ed.BobFrequency,
		})
		if err != nil {
			return nil, fmt.Errorf("scene %q: entity %q: %w", name, ed.Name, err)
		}
		entities = append(entities, entity)
	}

	return &Scene{
		Name:        name,
		Description: raw.Description,
		Entities:    entities,
	}, nil
}
