package model

// Phase is the stage of the project loading cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// LoadState drives what the project region shows.
// Message holds the loading text for PhaseLoading and the user-facing error for PhaseFailed.
type LoadState struct {
	Phase   Phase
	Cards   []DisplayCard
	Message string
}

func Idle() LoadState {
	return LoadState{Phase: PhaseIdle}
}

func Loading(text string) LoadState {
	return LoadState{Phase: PhaseLoading, Message: text}
}

func Loaded(cards []DisplayCard) LoadState {
	return LoadState{Phase: PhaseLoaded, Cards: cards}
}

func Failed(message string) LoadState {
	return LoadState{Phase: PhaseFailed, Message: message}
}
