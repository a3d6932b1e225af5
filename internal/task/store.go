package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// createdAtLayout is the timestamp stored with each task: local time
// at second precision, no zone.
const createdAtLayout = "2006-01-02T15:04:05"

// Store reads and writes the task list at a fixed file path. Every
// operation goes through a full load/modify/save cycle; nothing is
// cached between calls.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks from the store file. A missing or unparseable
// file yields an empty list, never an error, so a fresh or damaged
// store does not block the tool. Other read failures are returned.
func (s *Store) Load() ([]Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Task{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Debugf("parse store file %s: %v", s.path, err)
		return []Task{}, nil
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// Save writes the whole task list to the store file with 2-space
// indentation.
func (s *Store) Save(tasks []Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	return nil
}

// Add appends a new task built from text and due, assigning the next
// free id, and persists the list. The created task is returned for the
// confirmation message. An empty due flag stores null; a non-empty one
// is stored trimmed.
func (s *Store) Add(text, due string) (Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, err
	}

	t := Task{
		ID:        NextID(tasks),
		Text:      strings.TrimSpace(text),
		Done:      false,
		CreatedAt: time.Now().Format(createdAtLayout),
	}
	if due != "" {
		trimmed := strings.TrimSpace(due)
		t.Due = &trimmed
	}

	tasks = append(tasks, t)
	if err := s.Save(tasks); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Mark sets the done flag on the task with the given id. The bool
// reports whether the task was found; when it was not, the store file
// is left untouched.
func (s *Store) Mark(id int, done bool) (Task, bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, false, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Done = done
		if err := s.Save(tasks); err != nil {
			return Task{}, false, err
		}
		return tasks[i], true, nil
	}
	return Task{}, false, nil
}

// Update replaces the text and due time of the task with the given id.
// Both values are trimmed; an empty due clears the field. The bool
// reports whether the task was found.
func (s *Store) Update(id int, text, due string) (Task, bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return Task{}, false, err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Text = strings.TrimSpace(text)
		trimmed := strings.TrimSpace(due)
		if trimmed == "" {
			tasks[i].Due = nil
		} else {
			tasks[i].Due = &trimmed
		}
		if err := s.Save(tasks); err != nil {
			return Task{}, false, err
		}
		return tasks[i], true, nil
	}
	return Task{}, false, nil
}

// Remove deletes the task with the given id, reporting whether it was
// present. The store file is only rewritten when something was removed.
func (s *Store) Remove(id int) (bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return false, err
	}
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(tasks) {
		return false, nil
	}
	if err := s.Save(filtered); err != nil {
		return false, err
	}
	return true, nil
}
