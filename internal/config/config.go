package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time expresses the deadline and delay knobs as durations
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Identifiers and secrets are strings;
// durations and costs are parsed into their usable types.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	JWTSecret       string        // secret used to sign JWTs
	AccessTTLMin    int           // access token time-to-live in minutes
	BcryptCost      int           // bcrypt cost for password hashing
	PaymentDeadline time.Duration // settlement window after booking creation
	GatewayDelay    time.Duration // simulated payment gateway round-trip
	GatewaySuccess  int           // simulated settlement success rate, percent
	MerchantName    string        // merchant name embedded in QRIS payloads
	MerchantID      string        // merchant ID embedded in QRIS payloads
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// The payment knobs default to the product behavior: a 24 hour
// deadline, a 2 second gateway delay and a 90% success rate.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:      mustInt("BCRYPT_COST"),
		PaymentDeadline: time.Duration(envInt("PAYMENT_DEADLINE_HOURS", 24)) * time.Hour,
		GatewayDelay:    time.Duration(envInt("GATEWAY_DELAY_MS", 2000)) * time.Millisecond,
		GatewaySuccess:  envInt("GATEWAY_SUCCESS_PERCENT", 90),
		MerchantName:    envStr("MERCHANT_NAME", "ZOE Hotel"),
		MerchantID:      envStr("MERCHANT_ID", "BOOKING123"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envStr returns the variable's value or a default when unset.
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt returns the variable parsed as int or a default when unset or
// malformed.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}
