package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMotion      = 10  // Integrate velocity before judging
	PriorityWinner      = 20  // Serve check then boundary check, per ball
	PriorityUI          = 230 // Audio and display feedback
	PriorityDiagnostics = 950 // Telemetry collection
)
