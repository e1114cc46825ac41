package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. CORSOrigins lists the dashboard
// origins allowed to call the API and the rate limit applies per client IP.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSOrigins is a comma separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173,http://localhost:8080"`
	// RateLimitRPS is the sustained request rate allowed per client. Zero
	// disables rate limiting.
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	// RateLimitBurst is the burst size allowed per client.
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"40"`
}
