// Package scene loads authored office scenes: which agent avatars exist,
// the desk-to-desk paths they walk, their cycle timing, and the captions
// they show while paused at their destination.
//
// Scenes are YAML files, either embedded defaults or loaded from disk.
package scene

import "github.com/ambientworks/go-officeanim/pkg/animate"

// EntityData is the raw YAML form of one authored avatar.
type EntityData struct {
	// Name identifies the avatar within the scene (e.g. "research").
	Name string `yaml:"name"`

	// Label is the caption shown while the avatar dwells at its
	// destination desk.
	Label string `yaml:"label"`

	// Waypoints is the ordered path through the office, in world units.
	Waypoints [][3]float64 `yaml:"waypoints"`

	// Cycle timing and walk motion, in seconds / world units.
	ForwardSeconds float64 `yaml:"forward_seconds"`
	DwellSeconds   float64 `yaml:"dwell_seconds"`
	OffsetSeconds  float64 `yaml:"offset_seconds"`
	BobAmplitude   float64 `yaml:"bob_amplitude"`
	BobFrequency   float64 `yaml:"bob_frequency"`
}

// SceneData is the raw YAML form of a scene file.
type SceneData struct {
	// Description is a human-readable summary of the scene.
	Description string `yaml:"description"`

	// Entities lists the avatars in the scene.
	Entities []EntityData `yaml:"entities"`
}

// Scene is a loaded, validated scene ready to animate.
type Scene struct {
	// Name is the scene identifier, taken from the filename.
	Name string

	// Description explains the scene.
	Description string

	// Entities are the validated avatars, in file order.
	Entities []*Entity
}

// Frame is one avatar's fully derived state at a single instant, in the
// shape streamed to renderers.
type Frame struct {
	Entity string              `json:"entity"`
	Phase  string              `json:"phase"`
	Pose   animate.Pose        `json:"pose"`
	Dialog animate.DialogState `json:"dialog"`
}
