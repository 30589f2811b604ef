package state

// Action is a state transition. Failure actions carry the message shown to the
// user in Err and the original error in Cause; Reduce only reads Err.
type Action interface {
	isAction()
}

// LoadStarted begins a full reload.
type LoadStarted struct{}

// LoadSucceeded replaces the task list wholesale.
type LoadSucceeded struct {
	Tasks []TaskView
}

// LoadFailed ends a reload with an error.
type LoadFailed struct {
	Err   string
	Cause error
}

// CreateStarted marks a create request in flight. Nothing is inserted yet.
type CreateStarted struct{}

// CreateSucceeded inserts the task the server created.
type CreateSucceeded struct {
	Task TaskView
}

// CreateRejected reports field errors for a draft, from local rules or from the server.
type CreateRejected struct {
	FieldErrors map[string]string
}

// CreateFailed ends a create request with an error.
type CreateFailed struct {
	Err   string
	Cause error
}

// UpdateStarted applies a speculative change to a task.
type UpdateStarted struct {
	Task TaskView
}

// UpdateConfirmed reconciles a task to the server's values.
type UpdateConfirmed struct {
	Task TaskView
}

// UpdateFailed rolls a task back to its last confirmed values.
type UpdateFailed struct {
	ID          int64
	Err         string
	FieldErrors map[string]string
	Cause       error
}

// TaskVanished removes a task the server no longer knows.
type TaskVanished struct {
	ID int64
}

// DeleteStarted marks a task as pending deletion.
type DeleteStarted struct {
	ID int64
}

// DeleteSucceeded removes a task after the server acknowledged the delete.
type DeleteSucceeded struct {
	ID int64
}

// DeleteFailed keeps the task and reports the error.
type DeleteFailed struct {
	ID    int64
	Err   string
	Cause error
}

// FilterChanged switches the visible subset.
type FilterChanged struct {
	Filter Filter
}

// ErrorDismissed clears the banner and any field errors.
type ErrorDismissed struct{}

func (LoadStarted) isAction()     {}
func (LoadSucceeded) isAction()   {}
func (LoadFailed) isAction()      {}
func (CreateStarted) isAction()   {}
func (CreateSucceeded) isAction() {}
func (CreateRejected) isAction()  {}
func (CreateFailed) isAction()    {}
func (UpdateStarted) isAction()   {}
func (UpdateConfirmed) isAction() {}
func (UpdateFailed) isAction()    {}
func (TaskVanished) isAction()    {}
func (DeleteStarted) isAction()   {}
func (DeleteSucceeded) isAction() {}
func (DeleteFailed) isAction()    {}
func (FilterChanged) isAction()   {}
func (ErrorDismissed) isAction()  {}
