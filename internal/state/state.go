// Package state holds the client-side task list as an immutable value changed
// only through Reduce.
package state

import "maps"

// State is the whole client state. Treat it as a value: Reduce returns a new
// State and never modifies the one it was given.
type State struct {
	Tasks       []TaskView
	Filter      Filter
	Loading     bool
	Error       string
	FieldErrors map[string]string

	// updates in flight per task
	pending map[int64]int
	// last server-confirmed values of tasks with updates in flight
	confirmed map[int64]TaskView
	deleting  map[int64]bool
	creating  int
}

// New returns the initial state: no tasks, filter all.
func New() State {
	return State{
		Tasks:  []TaskView{},
		Filter: FilterAll,
	}
}

// Find returns the task with id.
func (s State) Find(id int64) (TaskView, bool) {
	if i := s.index(id); i >= 0 {
		return s.Tasks[i], true
	}
	return TaskView{}, false
}

// IsPending reports whether the task has an update in flight.
func (s State) IsPending(id int64) bool {
	return s.pending[id] > 0
}

// IsDeleting reports whether a delete of the task is in flight.
func (s State) IsDeleting(id int64) bool {
	return s.deleting[id]
}

// Creating returns the number of create requests in flight.
func (s State) Creating() int {
	return s.creating
}

func (s State) index(id int64) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s State) clone() State {
	next := s
	next.Tasks = append([]TaskView(nil), s.Tasks...)
	if next.Tasks == nil {
		next.Tasks = []TaskView{}
	}
	next.FieldErrors = maps.Clone(s.FieldErrors)
	next.pending = maps.Clone(s.pending)
	next.confirmed = maps.Clone(s.confirmed)
	next.deleting = maps.Clone(s.deleting)
	return next
}

func (s *State) forget(id int64) {
	delete(s.pending, id)
	delete(s.confirmed, id)
	delete(s.deleting, id)
}

func (s *State) remove(id int64) {
	if i := s.index(id); i >= 0 {
		s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	}
	s.forget(id)
}

func (s *State) replace(task TaskView) bool {
	i := s.index(task.ID)
	if i < 0 {
		return false
	}
	s.Tasks[i] = task
	return true
}

// settle records that one update of id has completed.
func (s *State) settle(id int64) {
	if s.pending[id] <= 1 {
		delete(s.pending, id)
		delete(s.confirmed, id)
		return
	}
	s.pending[id]--
}

// Reduce applies one action and returns the resulting state.
func Reduce(s State, action Action) State {
	next := s.clone()

	switch a := action.(type) {
	case LoadStarted:
		next.Loading = true
		next.Error = ""

	case LoadSucceeded:
		next.Loading = false
		next.Tasks = append([]TaskView{}, a.Tasks...)
		for id := range next.pending {
			if task, ok := next.Find(id); ok {
				next.confirmed[id] = task
			} else {
				next.forget(id)
			}
		}
		for id := range next.deleting {
			if next.index(id) < 0 {
				delete(next.deleting, id)
			}
		}

	case LoadFailed:
		next.Loading = false
		next.Error = a.Err

	case CreateStarted:
		next.creating++
		next.Error = ""
		next.FieldErrors = nil

	case CreateSucceeded:
		next.endCreate()
		next.FieldErrors = nil
		if !next.replace(a.Task) {
			next.Tasks = append(next.Tasks, a.Task)
		}

	case CreateRejected:
		next.endCreate()
		next.FieldErrors = maps.Clone(a.FieldErrors)

	case CreateFailed:
		next.endCreate()
		next.Error = a.Err

	case UpdateStarted:
		current, ok := next.Find(a.Task.ID)
		if !ok {
			break
		}
		if next.pending == nil {
			next.pending = make(map[int64]int)
		}
		if next.confirmed == nil {
			next.confirmed = make(map[int64]TaskView)
		}
		if next.pending[a.Task.ID] == 0 {
			next.confirmed[a.Task.ID] = current
		}
		next.pending[a.Task.ID]++
		next.FieldErrors = nil
		next.replace(a.Task)

	case UpdateConfirmed:
		if !next.replace(a.Task) {
			next.forget(a.Task.ID)
			break
		}
		if next.IsPending(a.Task.ID) {
			next.confirmed[a.Task.ID] = a.Task
			next.settle(a.Task.ID)
		}

	case UpdateFailed:
		if next.IsPending(a.ID) {
			next.replace(next.confirmed[a.ID])
			next.settle(a.ID)
		}
		if a.Err != "" {
			next.Error = a.Err
		}
		next.FieldErrors = maps.Clone(a.FieldErrors)

	case TaskVanished:
		next.remove(a.ID)

	case DeleteStarted:
		if next.index(a.ID) < 0 {
			break
		}
		if next.deleting == nil {
			next.deleting = make(map[int64]bool)
		}
		next.deleting[a.ID] = true

	case DeleteSucceeded:
		next.remove(a.ID)

	case DeleteFailed:
		delete(next.deleting, a.ID)
		next.Error = a.Err

	case FilterChanged:
		next.Filter = a.Filter

	case ErrorDismissed:
		next.Error = ""
		next.FieldErrors = nil
	}

	return next
}

func (s *State) endCreate() {
	if s.creating > 0 {
		s.creating--
	}
}
