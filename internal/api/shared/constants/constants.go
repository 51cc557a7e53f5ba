package constants

import "time"

const (
	DEFAULT_ACTIVITIES_LIMIT = 50
	MAX_ACTIVITIES_LIMIT     = 200
	MAX_TOKENS_PER_PURCHASE  = 1_000_000
	MAX_REVENUE_AMOUNT       = 1_000_000_000.0

	// Timeout for Temporal calls made while serving a request
	ORCHESTRATOR_CALL_TIMEOUT = 10 * time.Second
)
