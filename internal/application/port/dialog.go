package port

import "context"

// SaveLocationChooser asks the user where to save a file.
type SaveLocationChooser interface {
	// ChooseSaveLocation presents a modal save dialog pre-filled with
	// suggestedName. done is invoked exactly once, on the UI thread, with the
	// chosen absolute path and ok=true, or with ok=false when the user declined.
	ChooseSaveLocation(ctx context.Context, suggestedName string, done func(path string, ok bool))
}
