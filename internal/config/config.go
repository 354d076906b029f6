package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Only the listen port is required; every other
// value has a default so a bare process comes up as a self-contained demo
// with the seeded catalog and no external services.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	AMQPURL         string        // RabbitMQ connection URL for booking events (empty disables publishing)
	ConsumerEnabled bool          // run the in-process booking.confirmed consumer
	OMDBBaseURL     string        // base URL of the external movie catalog API
	OMDBAPIKey      string        // API key for the external catalog (empty disables remote lookups)
	SessionIdleTTL  time.Duration // idle duration after which a dialogue session is dropped
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            must("APP_PORT"), // port to bind the HTTP server
		AMQPURL:         os.Getenv("AMQP_URL"),
		ConsumerEnabled: envBool("BOOKING_CONSUMER_ENABLED", false),
		OMDBBaseURL:     envStr("OMDB_BASE_URL", "https://www.omdbapi.com/"),
		OMDBAPIKey:      os.Getenv("OMDB_API_KEY"),
		SessionIdleTTL:  envDur("SESSION_IDLE_TTL", 30*time.Minute),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
