package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form parameters such as connectivity names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value a simulation reports about itself.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current settings and counters of a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe themselves to the overlay.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lines flattens the snapshot into "Label: value" strings, one group header per group.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, "["+g.Name+"]")
		}
		for _, p := range g.Params {
			out = append(out, p.Label+": "+p.Value)
		}
	}
	return out
}
