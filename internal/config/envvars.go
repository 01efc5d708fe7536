// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the text fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.ExpandText = expandEnv(s.ExpandText)
	s.CollapseText = expandEnv(s.CollapseText)
	s.LinkColor = expandEnv(s.LinkColor)
	s.LinkBgColor = expandEnv(s.LinkBgColor)
	if s.Ellipsis != nil {
		e := expandEnv(*s.Ellipsis)
		s.Ellipsis = &e
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
