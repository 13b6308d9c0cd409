package places

import (
	"os"

	"github.com/custodia-labs/placescout-cli/internal/core/domain"
)

// apiKeyEnvVars are the environment variables consulted for the API key,
// in precedence order.
var apiKeyEnvVars = []string{
	"GOOGLE_PLACES_API_KEY",
	"GOOGLE_API_KEY",
	"API_KEY",
}

// APIKeyFromEnv resolves the Places API key from the environment.
// Returns domain.ErrMissingCredential when no variable holds a value.
func APIKeyFromEnv() (string, error) {
	for _, name := range apiKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", domain.ErrMissingCredential
}
