package match

import "strings"

// ServeType identifies which serve put the ball in play.
type ServeType int

const (
	ServeNone ServeType = iota
	ServeFirst
	ServeSecond
)

func (t ServeType) String() string {
	switch t {
	case ServeFirst:
		return "1st"
	case ServeSecond:
		return "2nd"
	default:
		return "-"
	}
}

// ServeOutcome is a single serve-phase event submitted by the operator.
type ServeOutcome int

const (
	ServeFirstIn ServeOutcome = iota
	ServeFirstFault
	ServeSecondIn
	ServeDoubleFault
	ServeAceFirst
	ServeAceSecond
	ServeServiceWinnerFirst
	ServeServiceWinnerSecond
)

func (o ServeOutcome) String() string {
	switch o {
	case ServeFirstIn:
		return "1st in"
	case ServeFirstFault:
		return "1st fault"
	case ServeSecondIn:
		return "2nd in"
	case ServeDoubleFault:
		return "double fault"
	case ServeAceFirst:
		return "Ace (1st)"
	case ServeAceSecond:
		return "Ace (2nd)"
	case ServeServiceWinnerFirst:
		return "Service winner (1st)"
	case ServeServiceWinnerSecond:
		return "Service winner (2nd)"
	default:
		return "unknown serve outcome"
	}
}

// serveType returns the serve the outcome describes.
func (o ServeOutcome) serveType() ServeType {
	switch o {
	case ServeFirstIn, ServeFirstFault, ServeAceFirst, ServeServiceWinnerFirst:
		return ServeFirst
	default:
		return ServeSecond
	}
}

// terminal reports whether the outcome ends the point on the serve.
func (o ServeOutcome) terminal() bool {
	switch o {
	case ServeFirstIn, ServeFirstFault, ServeSecondIn:
		return false
	default:
		return true
	}
}

// ReturnOutcome is a return-phase event. ReturnNone marks a point that
// ended before the return.
type ReturnOutcome int

const (
	ReturnNone ReturnOutcome = iota
	ReturnWinner
	ReturnUnforcedError
	ReturnForcedError
	ReturnIn
)

func (o ReturnOutcome) String() string {
	switch o {
	case ReturnWinner:
		return "Return winner"
	case ReturnUnforcedError:
		return "Return UE"
	case ReturnForcedError:
		return "Return FE (drawn by server)"
	case ReturnIn:
		return "Return in"
	default:
		return ""
	}
}

// RallyOutcome is a rally-phase event. RallyNone marks a point that
// ended before a rally developed.
type RallyOutcome int

const (
	RallyNone RallyOutcome = iota
	RallyServerWinner
	RallyReturnerWinner
	RallyServerUnforcedError
	RallyReturnerUnforcedError
	RallyServerForcedError
	RallyReturnerForcedError
)

func (o RallyOutcome) String() string {
	switch o {
	case RallyServerWinner:
		return "Rally: server winner"
	case RallyReturnerWinner:
		return "Rally: returner winner"
	case RallyServerUnforcedError:
		return "Rally: server UE"
	case RallyReturnerUnforcedError:
		return "Rally: returner UE"
	case RallyServerForcedError:
		return "Rally: server FE (drawn by returner)"
	case RallyReturnerForcedError:
		return "Rally: returner FE (drawn by server)"
	default:
		return ""
	}
}

// PointEvent is the structured record of everything that happened during
// one point: which serve landed, how the point ended, and the optional
// net-point mark. Textual renderings are derived from it, never parsed
// back.
type PointEvent struct {
	ServeType  ServeType    // serve that put the ball in play (or the double-faulted second)
	FirstFault bool         // the first serve missed before the deciding serve
	Serve      ServeOutcome // final serve-phase outcome
	Return     ReturnOutcome
	Rally      RallyOutcome
	NetMark    bool   // a player was tagged at the net for this point
	NetPlayer  Player // meaningful only when NetMark is set
}

// Describe renders the event chain as a short human-readable trail.
func (e PointEvent) Describe() string {
	var parts []string
	if e.FirstFault {
		parts = append(parts, "1st fault")
	}
	parts = append(parts, e.Serve.String())
	if e.Return != ReturnNone {
		parts = append(parts, e.Return.String())
	}
	if e.Rally != RallyNone {
		parts = append(parts, e.Rally.String())
	}
	return strings.Join(parts, "; ")
}
