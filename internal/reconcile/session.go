package reconcile

import (
	"context"
	"sync"

	"todo-app/internal/state"
)

// Session owns a State and applies ops to it synchronously. Each action is
// reduced under the lock, so a completed request is applied atomically.
type Session struct {
	engine *Engine

	mu    sync.Mutex
	state state.State
}

// NewSession starts from the empty state.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine, state: state.New()}
}

// Engine returns the engine the session builds ops with.
func (s *Session) Engine() *Engine {
	return s.engine
}

// State returns the current state.
func (s *Session) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply reduces one action.
func (s *Session) Apply(action state.Action) state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Reduce(s.state, action)
	return s.state
}

// Dispatch reduces op.Start, runs the request and reduces its result. It returns
// the settled state and the error the op ended with, if any.
func (s *Session) Dispatch(ctx context.Context, op Op) (state.State, error) {
	current := s.Apply(op.Start)
	if op.Run == nil {
		return current, ErrorOf(op.Start)
	}

	result := op.Run(ctx)
	return s.Apply(result), ErrorOf(result)
}

// Load reloads the full list.
func (s *Session) Load(ctx context.Context) (state.State, error) {
	return s.Dispatch(ctx, s.engine.Load())
}

// Add creates a task.
func (s *Session) Add(ctx context.Context, draft Draft) (state.State, error) {
	return s.Dispatch(ctx, s.engine.Add(draft))
}

// Toggle flips completion of task id.
func (s *Session) Toggle(ctx context.Context, id int64) (state.State, error) {
	op, err := s.engine.Toggle(s.State(), id)
	if err != nil {
		return s.State(), err
	}
	return s.Dispatch(ctx, op)
}

// Edit replaces the editable fields of task id.
func (s *Session) Edit(ctx context.Context, id int64, draft Draft) (state.State, error) {
	op, err := s.engine.Edit(s.State(), id, draft)
	if err != nil {
		return s.State(), err
	}
	return s.Dispatch(ctx, op)
}

// Remove deletes task id.
func (s *Session) Remove(ctx context.Context, id int64) (state.State, error) {
	op, err := s.engine.Remove(s.State(), id)
	if err != nil {
		return s.State(), err
	}
	return s.Dispatch(ctx, op)
}
