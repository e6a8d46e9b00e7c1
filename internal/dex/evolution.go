package dex

// UnknownTrigger is the display trigger of an evolution without a recorded
// trigger. It is blanked when the chain is flattened.
const UnknownTrigger = "Unknown"

// EvolutionNode is one species in an evolution tree. Children are owned by
// their parent; trees are acyclic.
type EvolutionNode struct {
	Name      string
	ID        int
	Trigger   string
	MinLevel  *int
	EvolvesTo []EvolutionNode
}

// EvolutionStep is one species of a flattened evolution chain.
type EvolutionStep struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	Trigger  string `json:"trigger"`
	MinLevel int    `json:"minLevel"`
}

// Flatten returns the tree in pre-order: the node itself, then each child
// subtree in order.
func (n EvolutionNode) Flatten() []EvolutionStep {
	return n.appendTo(nil)
}

func (n EvolutionNode) appendTo(steps []EvolutionStep) []EvolutionStep {
	step := EvolutionStep{
		Name:    n.Name,
		ID:      n.ID,
		Trigger: n.Trigger,
	}
	if step.Trigger == UnknownTrigger {
		step.Trigger = ""
	}
	if n.MinLevel != nil {
		step.MinLevel = *n.MinLevel
	}

	steps = append(steps, step)
	for _, child := range n.EvolvesTo {
		steps = child.appendTo(steps)
	}
	return steps
}
