package cli

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/cloudgraph-io/cgctl/pkg/project"
	"github.com/cloudgraph-io/cgctl/pkg/project/backend"
)

// Environment variable names for project backend configuration.
const (
	// EnvProjectBackend sets the project backend type (local, s3, gcs, azurerm).
	EnvProjectBackend = "CGCTL_PROJECT_BACKEND"

	// EnvProjectPrefix is the prefix for backend-specific config environment
	// variables. For example, CGCTL_PROJECT_PATH sets the "path" config for
	// the local backend, CGCTL_PROJECT_BUCKET the "bucket" config for S3/GCS.
	EnvProjectPrefix = "CGCTL_PROJECT_"
)

// createProjectStore creates a project store with the given backend type and
// config.
//
// Configuration precedence (highest to lowest):
//  1. CLI flags (--backend, --backend-config)
//  2. Environment variables (CGCTL_PROJECT_BACKEND, CGCTL_PROJECT_*)
//  3. default_backend from ~/.cgctl/config.yaml
//  4. Hardcoded defaults (local backend with ~/.cgctl/projects)
func createProjectStore(backendType string, backendConfig []string) (*project.Store, error) {
	// Start with hardcoded default
	effectiveBackend := "local"
	effectiveConfig := make(map[string]string)

	if cfgBackend := viper.GetString(ConfigKeyDefaultBackend); cfgBackend != "" {
		effectiveBackend = cfgBackend
	}

	// Apply environment variables
	if envBackend := os.Getenv(EnvProjectBackend); envBackend != "" {
		effectiveBackend = envBackend
	}

	// Check for backend-specific env vars (CGCTL_PROJECT_PATH, CGCTL_PROJECT_BUCKET, etc.)
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvProjectPrefix) && !strings.HasPrefix(env, EnvProjectBackend) {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				key := strings.ToLower(strings.TrimPrefix(parts[0], EnvProjectPrefix))
				effectiveConfig[key] = parts[1]
			}
		}
	}

	// Apply CLI flags (highest priority)
	if backendType != "" {
		effectiveBackend = backendType
	}

	for _, c := range backendConfig {
		parts := strings.SplitN(c, "=", 2)
		if len(parts) == 2 {
			effectiveConfig[parts[0]] = parts[1]
		}
	}

	return project.NewStoreFromConfig(backend.Config{
		Type:     effectiveBackend,
		Settings: effectiveConfig,
	})
}
