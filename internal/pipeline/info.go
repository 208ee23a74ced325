package pipeline

// WorkflowInfo is a static description of the fixed stage sequence, exposed
// for introspection.
type WorkflowInfo struct {
	Nodes []string `json:"nodes"`
	Flow  string   `json:"flow"`
}

// Info returns the static stage sequence. The graph is fixed at compile
// time, so this never varies between runs.
func Info() WorkflowInfo {
	return WorkflowInfo{
		Nodes: []string{
			"query_refiner",
			"orchestrator",
			"code_generator",
			"ui_enrichment",
			"code_reviewer",
			"deployment",
		},
		Flow: "query_refiner -> orchestrator -> code_generator -> ui_enrichment -> code_reviewer -> deployment",
	}
}
