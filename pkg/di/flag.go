package di

import "github.com/phpsanity/phpsanity/pkg/cli/flag"

// Flags holds all command-line flags and environment values for the root command.
type Flags struct {
	*flag.GlobalFlags

	Format  string
	NoColor bool

	IsGitHubActions bool

	Version string
	Args    []string
}
