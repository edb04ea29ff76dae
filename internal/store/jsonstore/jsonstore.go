// Package jsonstore owns the todo list and its JSON file round-trip.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rgallais/todo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// Store holds the ordered todo list in memory and persists it to one file.
// Ids are assigned from a counter that only moves forward, so an id freed
// by a delete is never handed out again during the process lifetime.
type Store struct {
	path   string
	todos  []model.Todo
	nextID int
}

// Open reads the data file at path. A missing file yields an empty store;
// a file with invalid JSON yields a *ParseError.
func Open(path string) (*Store, error) {
	s := &Store{path: path, nextID: 1}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("data file absent, starting empty", "path", path)
			return s, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	s.todos = todos
	// The file is a flat array, so the counter is rebuilt from the highest id.
	for _, t := range todos {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	log.Debug("loaded todos", "path", path, "count", len(todos))
	return s, nil
}

// Save serializes the ordered list to the data file, overwriting it.
func (s *Store) Save() error {
	todos := s.todos
	if todos == nil {
		todos = []model.Todo{} // keep the file a JSON array, never null
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	log.Debug("saved todos", "path", s.path, "count", len(todos))
	return nil
}

// Path returns the data file location backing this store.
func (s *Store) Path() string { return s.path }

// Add appends a new pending todo with a fresh id and returns it.
func (s *Store) Add(title, description string) model.Todo {
	now := time.Now()
	t := model.Todo{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.todos = append(s.todos, t)
	log.Debug("added todo", "id", t.ID)
	return t
}

// Get returns the todo with the given id.
func (s *Store) Get(id int) (model.Todo, error) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, &NotFoundError{ID: id}
	}
	return s.todos[i], nil
}

// Edit updates the fields that are non-nil. Passing nil for both is a no-op
// apart from the updated_at bump.
func (s *Store) Edit(id int, title, description *string) (model.Todo, error) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, &NotFoundError{ID: id}
	}
	if title != nil {
		s.todos[i].Title = *title
	}
	if description != nil {
		s.todos[i].Description = *description
	}
	s.todos[i].UpdatedAt = time.Now()
	log.Debug("edited todo", "id", id)
	return s.todos[i], nil
}

// Toggle flips the completed flag and returns the updated todo.
func (s *Store) Toggle(id int) (model.Todo, error) {
	i := s.index(id)
	if i < 0 {
		return model.Todo{}, &NotFoundError{ID: id}
	}
	s.todos[i].Completed = !s.todos[i].Completed
	s.todos[i].UpdatedAt = time.Now()
	log.Debug("toggled todo", "id", id, "completed", s.todos[i].Completed)
	return s.todos[i], nil
}

// Delete removes the todo with the given id, preserving the order of the rest.
func (s *Store) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	s.todos = append(s.todos[:i], s.todos[i+1:]...)
	log.Debug("deleted todo", "id", id)
	return nil
}

// Insert puts a previously removed todo back at the given position. The id
// must not already be present; the id counter is left untouched so ids stay
// unique. Used by the interactive list to undo a delete.
func (s *Store) Insert(at int, t model.Todo) error {
	if s.index(t.ID) >= 0 {
		return fmt.Errorf("todo %d already exists", t.ID)
	}
	if at < 0 {
		at = 0
	}
	if at > len(s.todos) {
		at = len(s.todos)
	}
	s.todos = slices.Insert(s.todos, at, t)
	return nil
}

// List returns the ordered sequence of todos. The slice is a copy; mutating
// it does not touch the store.
func (s *Store) List() []model.Todo {
	return slices.Clone(s.todos)
}

// Len reports the number of todos.
func (s *Store) Len() int { return len(s.todos) }

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.todos, func(t model.Todo) bool { return t.ID == id })
}
