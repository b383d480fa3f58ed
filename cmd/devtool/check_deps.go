package main

import (
	"context"
	"errors"
	"strings"
)

// dependency is an external tool the development workflow relies on
type dependency struct {
	name     string
	args     []string
	required bool
	install  string
	// version picks the version out of the tool's output
	version func(out string) string
}

var dependencies = []dependency{
	{
		name: "go", args: []string{"version"}, required: true,
		install: "https://go.dev/dl/",
		// go version go1.24.0 linux/amd64
		version: field(2),
	},
	{
		name: "docker", args: []string{"--version"},
		install: "https://docs.docker.com/get-docker/ (for the postgres backend and integration tests)",
		// Docker version 24.0.5, build ced0996
		version: func(out string) string { return strings.TrimRight(field(2)(out), ",") },
	},
	{
		name: "redis-cli", args: []string{"--version"},
		install: "only needed to inspect STATE_BACKEND=redis state",
		// redis-cli 7.2.4
		version: field(1),
	},
}

// field returns the n-th whitespace separated word of the first line
func field(n int) func(string) string {
	return func(out string) string {
		first, _, _ := strings.Cut(out, "\n")
		parts := strings.Fields(first)
		if len(parts) <= n {
			return first
		}
		return parts[n]
	}
}

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

func (c *CheckDepsCommand) Run(_ context.Context, _ []string) error {
	PrintHeader("Checking dependencies...")
	return checkDependencies(dependencies, getCommandOutput)
}

func checkDependencies(deps []dependency, run func(string, ...string) (string, error)) error {
	var missing []string
	for _, d := range deps {
		out, err := run(d.name, d.args...)
		if err == nil {
			PrintSuccess("%s installed: %s", d.name, d.version(out))
			continue
		}
		if d.required {
			PrintError("%s not found! Install from: %s", d.name, d.install)
			missing = append(missing, d.name)
			continue
		}
		PrintWarning("%s not found (optional): %s", d.name, d.install)
	}

	if len(missing) > 0 {
		return errors.New("missing required tools: " + strings.Join(missing, ", "))
	}
	PrintSuccess("Environment check complete!")
	return nil
}
