package status

const (
	StatusHealthy = "healthy"
	StatusOK      = "ok"

	RootMessage        = "Production Infrastructure Demo"
	UnknownEnvironment = "unknown"

	// EnvironmentVar names the variable reported as `environment` by the root endpoint.
	EnvironmentVar = "ENVIRONMENT"

	// TimestampFormat is ISO-8601 with microseconds and a zone offset.
	TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"
)

type RootResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
