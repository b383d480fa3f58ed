package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables each catalog backend needs
var RequiredEnvVars = map[string][]string{
	BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	BackendSQLite:   {"SQLITE_PATH"},
	BackendMemory:   {"DATA_DIR"},
}

// ValidateEnv checks that the variables required by the chosen backend are set
// and that the schema version matches expectations
func ValidateEnv(backend string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required, ok := RequiredEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown catalog backend: %s", backend)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings(backend string) ([]string, error) {
	if err := ValidateEnv(backend); err != nil {
		return nil, err
	}

	var warnings []string

	if backend == BackendPostgres && os.Getenv("DB_PASSWORD") == DefaultExampleDBSecret {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("CACHE_SIZE") == "0" {
		warnings = append(warnings, "CACHE_SIZE is 0 - every request will hit the catalog store")
	}

	return warnings, nil
}
