// Package cli parses command-line arguments into a Config, validates user
// input and carries process exit codes. Each puzzle subcommand is translated
// into a scenario.Scenario so flags and scenario files share one execution path.
package cli
