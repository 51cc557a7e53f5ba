package domain

const (
	// Listing defaults
	DEFAULT_TOTAL_TOKENS            = 100
	DEFAULT_PRICE_PER_TOKEN         = 5.0
	DEFAULT_LAUNCH_TIMELINE_MINUTES = 10

	// Revenue split
	COMPANY_REVENUE_SHARE = 0.8
	HOLDER_REVENUE_SHARE  = 0.2

	// Activity feed
	ACTIVITY_FEED_LIMIT = 50

	// Default number of ideas generated per request
	DEFAULT_IDEA_COUNT = 3
	MAX_IDEA_COUNT     = 10

	// Company name suffix appended to the CEO agent name at launch
	COMPANY_NAME_SUFFIX = " Company"
)
