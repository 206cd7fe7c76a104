package task

import "github.com/jyang234/taskpad/internal/model"

// Repository is the persistence surface the service needs: whole-collection
// load and rewrite. *store.Store satisfies it.
type Repository interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
}
