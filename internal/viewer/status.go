package viewer

// Phase is the stage of the viewer's load cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Status line texts.
const (
	PromptMessage      = "Open or drop an .obj or .stl file"
	UnsupportedMessage = "Unsupported file type. Use .obj or .stl."
)

// Status is what the viewer tells the user about the current load.
type Status struct {
	Phase   Phase
	File    string
	Message string
}

// String returns the status line.
func (s Status) String() string {
	return s.Message
}

// Unsupported reports whether the last file was rejected by extension.
func (s Status) Unsupported() bool {
	return s.Phase == PhaseIdle && s.Message == UnsupportedMessage
}

func idleStatus() Status {
	return Status{Phase: PhaseIdle, Message: PromptMessage}
}

func unsupportedStatus(file string) Status {
	return Status{Phase: PhaseIdle, File: file, Message: UnsupportedMessage}
}

func loadingStatus(file string) Status {
	return Status{Phase: PhaseLoading, File: file, Message: "Loading " + file + "..."}
}

func loadedStatus(file string) Status {
	return Status{Phase: PhaseLoaded, File: file, Message: "Loaded " + file}
}

// errorStatus carries no detail; the cause goes to the diagnostic log.
func errorStatus(file string) Status {
	return Status{Phase: PhaseError, File: file, Message: "Failed to load " + file + "."}
}
