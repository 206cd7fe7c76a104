package task

import (
	"math"
	"sort"
	"strings"

	"github.com/jyang234/taskpad/internal/model"
)

// Service is the single source of truth for task lifecycle operations. Every
// mutation reads the full store, changes it in memory and rewrites it; an
// operation that fails before save leaves the stored file untouched.
type Service struct {
	repo Repository
}

// NewService wires a service against a repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates and persists a new task, returning it with its assigned ID.
func (s *Service) Add(title, description string, priority int, tags []string) (model.Task, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return model.Task{}, err
	}

	t, err := model.New(title, description, priority, tags)
	if err != nil {
		return model.Task{}, err
	}

	tasks = append(tasks, t)
	if err := s.repo.Save(tasks); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// ListOptions narrows List results. Query matches case-insensitively against
// titles.
type ListOptions struct {
	IncludeDone bool
	Query       string
}

// List returns tasks sorted by priority descending, ties broken by creation
// time ascending. The same ordering drives Next.
func (s *Service) List(opts ListOptions) ([]model.Task, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(opts.Query)
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !opts.IncludeDone && t.Done {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Priority != filtered[j].Priority {
			return filtered[i].Priority > filtered[j].Priority
		}
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// Complete marks the task with the given ID as done and persists. An unknown
// ID is a no-op and returns false, not an error.
func (s *Service) Complete(id string) (bool, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return false, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = true
			if err := s.repo.Save(tasks); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the task with the given ID and persists. An unknown ID is a
// no-op and returns false.
func (s *Service) Delete(id string) (bool, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return false, err
	}

	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return false, nil
	}

	if err := s.repo.Save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Next returns the highest-priority open task (ties: earliest created), or
// nil when the store is empty or everything is done.
func (s *Service) Next() (*model.Task, error) {
	open, err := s.List(ListOptions{IncludeDone: false})
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, nil
	}
	return &open[0], nil
}

// Count returns the number of tasks, optionally excluding done ones.
func (s *Service) Count(includeDone bool) (int, error) {
	tasks, err := s.List(ListOptions{IncludeDone: includeDone})
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Stats summarizes the whole store. CompletionRate is a percentage rounded
// to two decimals, 0.0 for an empty store.
type Stats struct {
	Total          int
	Done           int
	Open           int
	CompletionRate float64
}

// Stats computes aggregate counts over the full collection.
func (s *Service) Stats() (Stats, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			st.Done++
		}
	}
	st.Open = st.Total - st.Done
	if st.Total > 0 {
		// Half-even rounding, so exact halves like 1/32 -> 3.12
		st.CompletionRate = math.RoundToEven(float64(st.Done)/float64(st.Total)*10000) / 100
	}
	return st, nil
}
