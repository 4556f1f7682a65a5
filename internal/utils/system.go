package utils

import (
	"os/user"
	"regexp"
	"strings"
)

var (
	unsafeFileChars = regexp.MustCompile(`[^a-z0-9\-_.]`)
	repeatedHyphens = regexp.MustCompile(`-+`)
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// SanitizeFileName lowercases name, turns spaces into hyphens and drops
// everything that is not safe in a file name on every platform.
func SanitizeFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = unsafeFileChars.ReplaceAllString(name, "")
	name = repeatedHyphens.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")

	if name == "" {
		name = "project"
	}
	return name
}
