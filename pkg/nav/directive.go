package nav

import (
	"fmt"
	"strings"

	"github.com/matzehuels/focusgrid/pkg/geom"
)

// Direction is one of the four D-pad directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Vector returns the unit step for d. Y grows downward.
func (d Direction) Vector() geom.Vector {
	switch d {
	case Up:
		return geom.Vector{DY: -1}
	case Down:
		return geom.Vector{DY: 1}
	case Left:
		return geom.Vector{DX: -1}
	default:
		return geom.Vector{DX: 1}
	}
}

// Sides returns the two perpendicular unit steps probed by a side scan, in
// probe order. Vertical moves probe left before right; horizontal moves probe
// up before down.
func (d Direction) Sides() [2]geom.Vector {
	if d == Up || d == Down {
		return [2]geom.Vector{{DX: -1}, {DX: 1}}
	}
	return [2]geom.Vector{{DY: -1}, {DY: 1}}
}

// Button identifies a physical controller button.
type Button string

// ButtonAction is what a bound button does within its layout.
type ButtonAction int

const (
	// JumpRightEdge focuses the first element found scanning leftward from
	// just past the right edge of the top row.
	JumpRightEdge ButtonAction = iota
	// JumpLeftEdge focuses the first element found scanning rightward from
	// just before the left edge of the top row.
	JumpLeftEdge
)

func (a ButtonAction) String() string {
	switch a {
	case JumpRightEdge:
		return "jump-right-edge"
	case JumpLeftEdge:
		return "jump-left-edge"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseButtonAction parses the names produced by ButtonAction.String.
func ParseButtonAction(s string) (ButtonAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jump-right-edge":
		return JumpRightEdge, nil
	case "jump-left-edge":
		return JumpLeftEdge, nil
	}
	return 0, fmt.Errorf("unknown button action %q", s)
}

// DirectiveKind distinguishes the three directive variants.
type DirectiveKind int

const (
	KindNoop DirectiveKind = iota
	KindMove
	KindButton
)

// Directive is a single navigation command. Build one with [Move], [Press]
// or [Noop]; the zero value is a Noop.
type Directive struct {
	Kind      DirectiveKind
	Direction Direction
	Button    Button
}

// Move returns a directional directive.
func Move(d Direction) Directive { return Directive{Kind: KindMove, Direction: d} }

// Press returns a button directive.
func Press(b Button) Directive { return Directive{Kind: KindButton, Button: b} }

// Noop returns the directive that reports the current focus without moving.
func Noop() Directive { return Directive{} }

func (d Directive) String() string {
	switch d.Kind {
	case KindMove:
		return d.Direction.String()
	case KindButton:
		return "button:" + string(d.Button)
	default:
		return "noop"
	}
}

// ParseDirective parses "up", "down", "left", "right", "noop" and
// "button:<id>". Direction names are case-insensitive; button identifiers are
// taken verbatim.
func ParseDirective(s string) (Directive, error) {
	s = strings.TrimSpace(s)
	if id, ok := strings.CutPrefix(s, "button:"); ok {
		if id == "" {
			return Directive{}, fmt.Errorf("%w: empty button identifier", ErrInvalidDirective)
		}
		return Press(Button(id)), nil
	}
	switch strings.ToLower(s) {
	case "up":
		return Move(Up), nil
	case "down":
		return Move(Down), nil
	case "left":
		return Move(Left), nil
	case "right":
		return Move(Right), nil
	case "noop", "":
		return Noop(), nil
	}
	return Directive{}, fmt.Errorf("%w: %q", ErrInvalidDirective, s)
}

// ResultKind classifies a navigation outcome.
type ResultKind int

const (
	// NoNextItem means nothing lies in the requested direction. Focus did not
	// change.
	NoNextItem ResultKind = iota
	// WithinLayout means focus moved to, or stayed on, an element of the
	// navigated node.
	WithinLayout
	// AcrossLayout means focus landed in a different node.
	AcrossLayout
)

func (k ResultKind) String() string {
	switch k {
	case WithinLayout:
		return "within"
	case AcrossLayout:
		return "across"
	default:
		return "no-next-item"
	}
}

// Result is the outcome of one navigation step. FocusID and Node are set for
// WithinLayout and AcrossLayout; Node is the node that now holds focus.
type Result struct {
	Kind    ResultKind
	FocusID string
	Node    NodeID
}

func within(focusID string, id NodeID) Result {
	return Result{Kind: WithinLayout, FocusID: focusID, Node: id}
}

// across re-labels a child or parent WithinLayout result as a crossing.
func across(r Result) Result {
	if r.Kind == WithinLayout {
		r.Kind = AcrossLayout
	}
	return r
}

var noNextItem = Result{Kind: NoNextItem, Node: NoNode}
