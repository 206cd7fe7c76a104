package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jyang234/taskpad/internal/model"
)

func mustTask(t *testing.T, title string, priority int, tags []string) model.Task {
	t.Helper()
	task, err := model.New(title, "", priority, tags)
	if err != nil {
		t.Fatalf("model.New failed: %v", err)
	}
	return task
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "tasks.json"))
	tasks, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty collection, got %d tasks", len(tasks))
	}
}

func TestLoadNotArray(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{"object", `{"id": "x"}`},
		{"string", `"hello"`},
		{"number", `42`},
		{"null", `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := New(path).Load()
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Expected *FormatError, got %T: %v", err, err)
			}
			if !strings.Contains(ferr.Error(), "JSON array") {
				t.Errorf("Unexpected message: %v", ferr)
			}
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load()
	if err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}
	var ferr *FormatError
	if errors.As(err, &ferr) {
		t.Error("Malformed JSON should not be reported as FormatError")
	}
}

func TestLoadRejectsInvalidTask(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"id": "1", "title": "ok"}, {"id": "2", "title": "bad", "priority": 9}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load()
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T: %v", err, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	// Parent directories are created on save
	path := filepath.Join(t.TempDir(), ".data", "nested", "tasks.json")
	s := New(path)

	original := []model.Task{
		mustTask(t, "first", 2, []string{"b", "a"}),
		mustTask(t, "second", 5, nil),
	}
	original[1].Done = true

	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(loaded))
	}

	for i := range original {
		if loaded[i].ID != original[i].ID ||
			loaded[i].Title != original[i].Title ||
			loaded[i].Priority != original[i].Priority ||
			loaded[i].Done != original[i].Done {
			t.Errorf("Task %d mismatch: %+v vs %+v", i, loaded[i], original[i])
		}
		if !loaded[i].CreatedAt.Equal(original[i].CreatedAt) {
			t.Errorf("Task %d created_at mismatch", i)
		}
	}
	if len(loaded[0].Tags) != 2 || loaded[0].Tags[0] != "b" || loaded[0].Tags[1] != "a" {
		t.Errorf("Tag order not preserved: %v", loaded[0].Tags)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "tasks.json"))

	if err := s.Save([]model.Task{mustTask(t, "old", 1, nil)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	replacement := mustTask(t, "new", 4, nil)
	if err := s.Save([]model.Task{replacement}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "new" {
		t.Errorf("Expected wholesale replacement, got %+v", loaded)
	}

	// No temp file left behind
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}
}

func TestSaveEmptyCollection(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), "tasks.json"))
	if err := s.Save([]model.Task{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("Expected empty JSON array, got %q", string(data))
	}
}

func TestLoadAppliesFieldDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"id": "1", "title": "sparse"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(loaded))
	}

	task := loaded[0]
	if task.Priority != 3 || task.Done || task.Description != "" {
		t.Errorf("Defaults not applied: %+v", task)
	}
	if task.Tags == nil {
		t.Error("Expected tags to default to an empty slice")
	}
	if task.CreatedAt.IsZero() {
		t.Error("Expected created_at to default to now")
	}
}
