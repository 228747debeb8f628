package services

import "github.com/google/uuid"

// Severity classifies log events emitted during a sync run.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityHeader  Severity = "header"
)

// Listener receives the progress, log and completion events of a sync
// run. Events arrive on the goroutine running the sync; presentation
// layers marshal them onto their own loop.
type Listener interface {
	Progress(current, total int)
	Log(message string, severity Severity)
	Done(succeeded, failed []string)
}

// Callbacks adapts plain functions to the Listener interface. Nil
// fields are skipped.
type Callbacks struct {
	OnProgress func(current, total int)
	OnLog      func(message string, severity Severity)
	OnDone     func(succeeded, failed []string)
}

func (c Callbacks) Progress(current, total int) {
	if c.OnProgress != nil {
		c.OnProgress(current, total)
	}
}

func (c Callbacks) Log(message string, severity Severity) {
	if c.OnLog != nil {
		c.OnLog(message, severity)
	}
}

func (c Callbacks) Done(succeeded, failed []string) {
	if c.OnDone != nil {
		c.OnDone(succeeded, failed)
	}
}

// Report summarizes one sync run. Succeeded and Failed hold manifest
// entry names in manifest order.
type Report struct {
	RunID     string
	Succeeded []string
	Failed    []string
}

func newReport() Report {
	return Report{RunID: uuid.NewString()}
}

// Total is the number of entries attempted.
func (r Report) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}
