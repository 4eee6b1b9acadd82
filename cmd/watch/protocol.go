package watch

const (
	routeIndex  = "/"
	routeEvents = "/events"
)

const (
	sseEventGraph = "graph"
	sseEventError = "rebuild-error"
)

// graphUpdate is the JSON payload of one SSE message.
type graphUpdate struct {
	Event string `json:"-"`
	Label string `json:"label,omitempty"`
	DOT   string `json:"dot,omitempty"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
	Error string `json:"error,omitempty"`
}

func graphEvent(label, dot string, nodes, edges int) graphUpdate {
	return graphUpdate{Event: sseEventGraph, Label: label, DOT: dot, Nodes: nodes, Edges: edges}
}

func errorEvent(err error) graphUpdate {
	return graphUpdate{Event: sseEventError, Error: err.Error()}
}
