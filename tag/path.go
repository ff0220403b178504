package tag

import "strings"

// PathSeparator separates field names of a nested field path.
const PathSeparator = "."

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}

// JoinPath builds a nested field path out of given names.
func JoinPath(names ...string) string {
	return strings.Join(names, PathSeparator)
}
