package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority bounds for a task. DefaultPriority is used when a stored task
// omits the field and when the CLI caller does not pass one.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// Task is a single to-do item. ID and CreatedAt are assigned at construction
// and never change; Done is the only field mutated afterwards.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Done        bool      `json:"done"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidationError reports invalid input to a constructor or operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// New builds a validated task with a fresh UUID and a UTC creation timestamp.
// The title is trimmed before the empty check.
func New(title, description string, priority int, tags []string) (Task, error) {
	if tags == nil {
		tags = []string{}
	}

	t := Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.normalize(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Decode parses one stored task object. Missing optional fields fall back to
// their documented defaults; title and priority constraints are re-checked
// the same way construction checks them.
func Decode(raw json.RawMessage) (Task, error) {
	t := Task{Priority: DefaultPriority}
	if err := json.Unmarshal(raw, &t); err != nil {
		return Task{}, fmt.Errorf("failed to parse task: %w", err)
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if err := t.normalize(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// normalize trims the title and enforces the construction invariants.
func (t *Task) normalize() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return &ValidationError{Field: "priority", Reason: "must be in range 1..5"}
	}
	return nil
}
