package airesponse

const (
	// SuccessSummary is used when a structured payload carries no summary of its own.
	SuccessSummary = "AI successfully processed your input."

	// listLeadCount numbered items at the head of a list are high priority.
	listLeadCount = 2
)
