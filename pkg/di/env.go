package di

// SetEnv populates flags from environment variables.
// NO_COLOR only ever disables colors. It can't override --no-color.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
	if getEnv("NO_COLOR") != "" {
		flags.NoColor = true
	}
}
