package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 10

	defaultBatchWorkers   = 4
	defaultMaxBatchFields = 20
)

// defaults returns the values loaded before any file. base.yaml, the
// profile file, and env vars all override them.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "15s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"users_api.base_url":                        "http://localhost:8081",
		"users_api.timeout":                         "10s",
		"users_api.retry.max_attempts":              defaultRetryMaxAttempts,
		"users_api.retry.initial_interval":          "100ms",
		"users_api.retry.max_interval":              "2s",
		"users_api.retry.multiplier":                defaultRetryMultiplier,
		"users_api.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"users_api.circuit_breaker.timeout":         "30s",
		"users_api.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"users_api.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"users_api.rate_limit.burst_size":           defaultRateLimitBurst,

		"forms.batch_workers":    defaultBatchWorkers,
		"forms.max_batch_fields": defaultMaxBatchFields,

		"cors.allowed_origins":   []string{"http://localhost:3000"},
		"cors.allow_credentials": true,
		"cors.max_age":           "10m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "forms-service",
	}
}
