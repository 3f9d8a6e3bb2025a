package loader

// State is the pagination state of a Loader.
type State int

const (
	Idle State = iota
	Fetching
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
