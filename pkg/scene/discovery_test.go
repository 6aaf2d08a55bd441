package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opticslab/go-beamtrace/pkg/tracer"
)

func TestNewSceneByID(t *testing.T) {
	for _, info := range ListBuiltinScenes() {
		if NewSceneByID(info.ID) == nil {
			t.Errorf("listed scene %q not buildable", info.ID)
		}
	}
	if NewSceneByID("no-such-scene") != nil {
		t.Error("unknown id should return nil")
	}
}

func TestBuiltinScenesTrace(t *testing.T) {
	// Every built-in bench must trace cleanly with the defaults
	for _, info := range ListBuiltinScenes() {
		s := NewSceneByID(info.ID)

		paths, stats := s.Trace(tracer.DefaultParams())
		if len(paths) == 0 {
			t.Errorf("%s: no paths traced", info.ID)
		}
		if len(stats.Warnings) != 0 {
			t.Errorf("%s: unexpected warnings %v", info.ID, stats.Warnings)
		}
		for i, path := range paths {
			if len(path.Points) < 2 {
				t.Errorf("%s: path %d has %d points", info.ID, i, len(path.Points))
			}
		}
	}
}

func TestCavitySceneTruncates(t *testing.T) {
	s := NewSceneByID("cavity")

	paths, _ := s.Trace(tracer.DefaultParams())
	if len(paths) != 1 {
		t.Fatalf("got %d paths, expected 1", len(paths))
	}
	if !paths[0].Truncated {
		t.Error("trapped cavity ray not marked truncated")
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("bench-b.json", `{"name": "Bench B", "elements": [], "sources": []}`)
	write("bench-a.json", `{"name": "Bench A", "elements": [], "sources": []}`)
	write("notes.txt", "ignored")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("got %d scenes, expected 2", len(scenes))
	}
	// Sorted by display name, not filename order
	if scenes[0].Name != "Bench A" || scenes[1].Name != "Bench B" {
		t.Errorf("unexpected order: %q, %q", scenes[0].Name, scenes[1].Name)
	}
	if scenes[0].ID != "bench-a" {
		t.Errorf("id %q, expected bench-a", scenes[0].ID)
	}
	if scenes[0].Type != "file" || scenes[0].FilePath == "" {
		t.Errorf("file scene metadata incomplete: %+v", scenes[0])
	}
}

func TestListSceneFiles_MissingDir(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("got %d scenes from a missing directory", len(scenes))
	}
}
