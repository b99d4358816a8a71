package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Settings describe how a scene is best viewed and sampled. Every field can
// be overridden from a JSON file using the camelCase keys below.
type Settings struct {
	CameraPosition  core.Vec3 `json:"cameraPosition"`
	CameraTarget    core.Vec3 `json:"cameraTarget"`
	CameraAperture  float32   `json:"cameraAperture"`
	CameraFOV       float32   `json:"cameraFov"` // Vertical field of view in degrees
	Background      core.Vec3 `json:"background"`
	SamplesPerPixel int       `json:"samplesPerPixel"`
	MaxBounces      int       `json:"maxBounces"`
}

// DefaultSettings returns the settings scenes start from before their own overrides
func DefaultSettings() Settings {
	return Settings{
		CameraPosition:  core.NewVec3(0, 0, -3),
		CameraTarget:    core.NewVec3(0, 0, 0),
		CameraAperture:  0,
		CameraFOV:       40,
		Background:      core.NewVec3(1, 1, 1),
		SamplesPerPixel: 50,
		MaxBounces:      10,
	}
}

// ApplyJSON overrides the fields present in data and leaves the rest untouched
func (s Settings) ApplyJSON(data []byte) (Settings, error) {
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid scene settings: %w", err)
	}
	return s, nil
}

// LoadSettings applies the overrides in a JSON file on top of base
func LoadSettings(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read scene settings: %w", err)
	}
	return base.ApplyJSON(data)
}
