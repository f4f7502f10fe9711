package usecase

import "github.com/tribu-ai/tribuai/pkg/domain/types"

// Node identifies a processing stage within a single conversation turn.
type Node string

const (
	NodeParsing           Node = "parsing"
	NodeAskField          Node = "ask_field"
	NodeProfileGeneration Node = "profile_generation"
	NodeRecommendation    Node = "recommendation"
	NodeMatching          Node = "matching"
	NodeTurnEnd           Node = "turn_end"
)

// State is the engine position within a turn. AskCategory is only meaningful
// when Node is NodeAskField and names the category the next question targets.
type State struct {
	Node        Node
	AskCategory types.Category
}

// Event is the outcome of running a node. The transition function consumes
// events; nodes produce them. All I/O stays in the nodes.
type Event interface {
	isEvent()
}

// EventParsed reports the profile status after entity extraction and merge.
type EventParsed struct {
	Complete     bool
	FirstMissing types.Category
}

// EventAsked reports that a clarifying question was emitted.
type EventAsked struct{}

// EventProfileBuilt reports that the cultural profile was generated.
type EventProfileBuilt struct{}

// EventRecommended reports that recommendation retrieval finished.
type EventRecommended struct{}

// EventMatched reports that audience matching finished.
type EventMatched struct{}

func (EventParsed) isEvent()       {}
func (EventAsked) isEvent()        {}
func (EventProfileBuilt) isEvent() {}
func (EventRecommended) isEvent()  {}
func (EventMatched) isEvent()      {}

// Transition is the pure state transition function of the turn engine. Given
// the current state and the event produced by its node, it returns the next
// state. Unknown combinations terminate the turn.
func Transition(s State, ev Event) State {
	switch s.Node {
	case NodeParsing:
		if parsed, ok := ev.(EventParsed); ok {
			if parsed.Complete {
				return State{Node: NodeProfileGeneration}
			}
			return State{Node: NodeAskField, AskCategory: parsed.FirstMissing}
		}

	case NodeAskField:
		if _, ok := ev.(EventAsked); ok {
			return State{Node: NodeTurnEnd}
		}

	case NodeProfileGeneration:
		if _, ok := ev.(EventProfileBuilt); ok {
			return State{Node: NodeRecommendation}
		}

	case NodeRecommendation:
		if _, ok := ev.(EventRecommended); ok {
			return State{Node: NodeMatching}
		}

	case NodeMatching:
		if _, ok := ev.(EventMatched); ok {
			return State{Node: NodeTurnEnd}
		}
	}

	return State{Node: NodeTurnEnd}
}
