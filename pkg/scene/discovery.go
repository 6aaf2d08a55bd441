package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SceneInfo represents a discoverable scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to scene JSON (file type only)
}

// builtinScenes maps scene IDs to constructors, in the order they are
// listed by discovery
var builtinScenes = []struct {
	info  SceneInfo
	build func() *Scene
}{
	{SceneInfo{ID: "default", Name: "Default Bench", Description: "Beamsplitter, fold mirror, and lens", Type: "builtin"}, NewDefaultScene},
	{SceneInfo{ID: "michelson", Name: "Michelson Interferometer", Description: "Beamsplitter with two retroreflecting arms", Type: "builtin"}, NewMichelsonScene},
	{SceneInfo{ID: "polarimeter", Name: "Polarimeter", Description: "Quarter- and half-wave plates into a PBS", Type: "builtin"}, NewPolarimeterScene},
	{SceneInfo{ID: "refraction", Name: "Refraction Tank", Description: "Glass-air boundary with refraction and TIR", Type: "builtin"}, NewRefractionScene},
	{SceneInfo{ID: "cavity", Name: "Mirror Cavity", Description: "Two facing mirrors, bounded by the event budget", Type: "builtin"}, NewCavityScene},
}

// NewSceneByID builds a built-in scene from its identifier, or nil if the
// identifier is unknown
func NewSceneByID(id string) *Scene {
	for _, entry := range builtinScenes {
		if entry.info.ID == id {
			return entry.build()
		}
	}
	return nil
}

// ListBuiltinScenes returns metadata for all built-in scenes
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		infos = append(infos, entry.info)
	}
	return infos
}

// ListSceneFiles scans the given directory for *.json scene files and
// returns discovered scenes sorted by name. A missing directory is not an
// error; it just yields no file scenes.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan scenes directory: %w", err)
	}

	var scenes []SceneInfo
	for _, path := range files {
		id := filepath.Base(path)
		id = id[:len(id)-len(filepath.Ext(id))]

		name := id
		if s, _, err := LoadConfig(path); err == nil && s.Name != "" {
			name = s.Name
		}

		scenes = append(scenes, SceneInfo{
			ID:       id,
			Name:     name,
			Type:     "file",
			FilePath: path,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}
