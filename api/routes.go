package api

const (
	// PingEndpoint is the endpoint for checking the API status
	PingEndpoint = "/ping"
	// SetupEndpoint is the endpoint to fetch the current SRS
	SetupEndpoint = "/setup"
	// SetupUpdateEndpoint is the endpoint to submit a setup update
	SetupUpdateEndpoint = "/setup/update"
	// CensusEndpoint is the endpoint to fetch the running census commitments
	CensusEndpoint = "/census"
	// RegisterEndpoint is the endpoint to register a voter key
	RegisterEndpoint = "/census/register"
	// ProcessesEndpoint is the endpoint for creating a new voting process
	ProcessesEndpoint = "/processes"
	// ProcessEndpoint is the endpoint to get the process info
	ProcessURLParam = "processId"
	ProcessEndpoint = "/processes/{" + ProcessURLParam + "}"
)
