package classpath

import "os"

// Artifact is a classpath entry that exists as a regular file.
type Artifact struct {
	Path string
}

// String returns the artifact path.
func (a Artifact) String() string { return a.Path }

// Resolve returns, in order, the entries that currently exist as regular files.
// Non-existent entries and directories are dropped without error.
func Resolve(entries []string) []Artifact {
	var artifacts []Artifact
	for _, entry := range entries {
		info, err := os.Stat(entry)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		artifacts = append(artifacts, Artifact{Path: entry})
	}
	return artifacts
}

// Paths returns the artifact paths in order.
func Paths(artifacts []Artifact) []string {
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.Path
	}
	return paths
}
