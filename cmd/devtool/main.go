// Command devtool bundles the maintenance tasks for a Valley Companion
// deployment: schema migrations, catalog seeding and environment checks.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Print* helpers carry the output; only warnings and errors are logged
	lc := logger.FromEnv("valley-companion-devtool")
	lc.Level = logger.LogLevelWarn
	logger.InitLogger(lc)

	registry := newDefaultRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	os.Exit(registry.Execute(os.Args[1], os.Args[2:]))
}

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CreateDBCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&SeedCommand{})
	r.Register(&ValidateDataCommand{})
	r.Register(&WaitForDBCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&CheckDepsCommand{})
	r.Register(&DoctorCommand{})
	return r
}
