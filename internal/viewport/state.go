package viewport

// State is the navigation state of a Controller.
type State int

const (
	Idle           State = iota // No animation in flight
	AnimatingLeft               // Panning toward the previous slot
	AnimatingRight              // Panning toward the next slot
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AnimatingLeft:
		return "animating left"
	case AnimatingRight:
		return "animating right"
	default:
		return "unknown"
	}
}

// Zone is a horizontal region of the visible window.
type Zone int

const (
	Center Zone = iota
	NearLeft
	NearRight
)

func (z Zone) String() string {
	switch z {
	case Center:
		return "center"
	case NearLeft:
		return "near-left"
	case NearRight:
		return "near-right"
	default:
		return "unknown"
	}
}

// Affordance is the navigation hint shown for a pointer position.
type Affordance int

const (
	Neutral Affordance = iota
	CanGoLeft
	CanGoRight
)

func (a Affordance) String() string {
	switch a {
	case Neutral:
		return "neutral"
	case CanGoLeft:
		return "can go left"
	case CanGoRight:
		return "can go right"
	default:
		return "unknown"
	}
}
