package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// InsecureAdminDefault is the admin secret used when ADMIN_PASSWORD is unset.
// Local development only; main logs a warning when it is in effect.
const InsecureAdminDefault = "admin123"

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Commerce platform (catalog, inventory, payments, orders)
	CommerceBaseURL    string
	CommerceToken      string
	CommerceLocationID string

	// Vector search index
	SearchAPIKey    string
	SearchIndexName string
	SearchIndexHost string
	SearchNamespace string

	AdminSecret string

	// CORS
	CORSAllowOrigins []string
}

// Load reads the environment exactly once. Every credential the service
// needs is validated here so a missing one fails the process at startup
// instead of surfacing later as a vendor network error.
func Load() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),

		CommerceBaseURL:    getenv("COMMERCE_BASE_URL", "https://connect.squareup.com"),
		CommerceToken:      os.Getenv("COMMERCE_ACCESS_TOKEN"),
		CommerceLocationID: os.Getenv("COMMERCE_LOCATION_ID"),

		SearchAPIKey:    os.Getenv("SEARCH_API_KEY"),
		SearchIndexName: os.Getenv("SEARCH_INDEX_NAME"),
		SearchIndexHost: os.Getenv("SEARCH_INDEX_HOST"),
		SearchNamespace: getenv("SEARCH_NAMESPACE", "books"),

		AdminSecret: getenv("ADMIN_PASSWORD", InsecureAdminDefault),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	var missing []string
	for _, req := range []struct {
		name, value string
	}{
		{"COMMERCE_ACCESS_TOKEN", cfg.CommerceToken},
		{"COMMERCE_LOCATION_ID", cfg.CommerceLocationID},
		{"SEARCH_API_KEY", cfg.SearchAPIKey},
		{"SEARCH_INDEX_NAME", cfg.SearchIndexName},
		{"SEARCH_INDEX_HOST", cfg.SearchIndexHost},
	} {
		if strings.TrimSpace(req.value) == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
