package domain

import (
	"context"
	"io"
	"strings"
)

// FileHandle is one file picked by the user for upload.
type FileHandle struct {
	Name    string
	Content io.Reader
}

// FileSelection keeps the order in which files were picked.
type FileSelection []FileHandle

func (s FileSelection) Empty() bool {
	return len(s) == 0
}

// MoveRequest describes a rename or move of Source to Destination.
type MoveRequest struct {
	Source      string
	Destination string
}

func (r MoveRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == PathEmpty {
		return ErrEmptyDestination
	}
	return nil
}

// Response is the raw answer of the file-management API.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// FileAPI sends the requests of the file-management API.
// An error return always means the request did not complete.
type FileAPI interface {
	Upload(ctx context.Context, files FileSelection) (Response, error)
	CreateDirectory(ctx context.Context, name string) (Response, error)
	Move(ctx context.Context, req MoveRequest) (Response, error)
	Delete(ctx context.Context, fileName string) (Response, error)
	Fetch(ctx context.Context, path string) (Response, error)
}

// TextPrompter asks the user for a line of text.
// ok is false when the user dismissed the prompt.
type TextPrompter interface {
	PromptForText(ctx context.Context, label, defaultValue string) (value string, ok bool, err error)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	ConfirmAction(ctx context.Context, question string) (bool, error)
}

// Notifier shows the outcome of an operation to the user.
type Notifier interface {
	Notify(operation string, outcome Outcome)
}

// Refresher is invoked after a mutation the server confirmed.
type Refresher interface {
	OnMutationComplete(ctx context.Context, operation string)
}

// FileOps is the set of user-triggered operations.
type FileOps interface {
	Upload(ctx context.Context, files FileSelection) Outcome
	CreateDirectory(ctx context.Context, currentPath string) Outcome
	Move(ctx context.Context, currentPath, fileName string) Outcome
	Delete(ctx context.Context, fileName string) Outcome
}

// Entry is one item of a directory listing.
type Entry struct {
	Name string
	Link string
}
