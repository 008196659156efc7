package source

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/scrgen/pkg/errors"
)

// DefaultExcludes are the Ant default exclude patterns.
var DefaultExcludes = []string{
	// Miscellaneous typical temporary files
	"**/*~",
	"**/#*#",
	"**/.#*",
	"**/%*%",
	"**/._*",

	// CVS
	"**/CVS",
	"**/CVS/**",
	"**/.cvsignore",

	// SCCS
	"**/SCCS",
	"**/SCCS/**",

	// Visual SourceSafe
	"**/vssver.scc",

	// Subversion
	"**/.svn",
	"**/.svn/**",

	// Git
	"**/.git",
	"**/.git/**",
	"**/.gitattributes",
	"**/.gitignore",
	"**/.gitmodules",

	// Mercurial
	"**/.hg",
	"**/.hg/**",
	"**/.hgignore",
	"**/.hgsub",
	"**/.hgsubstate",
	"**/.hgtags",

	// Bazaar
	"**/.bzr",
	"**/.bzr/**",
	"**/.bzrignore",

	// Mac
	"**/.DS_Store",
}

// FileSet selects files below a root directory.
type FileSet struct {
	Dir               string   // root directory (required)
	Includes          []string // include patterns; empty means "**"
	Excludes          []string // exclude patterns
	NoDefaultExcludes bool     // skip DefaultExcludes
}

// matcher holds the normalized patterns of a FileSet.
type matcher struct {
	includes []string
	excludes []string
	prune    []string // exclude patterns that cover whole directories
}

func (fs FileSet) matcher() (*matcher, error) {
	m := &matcher{}

	includes := fs.Includes
	if len(includes) == 0 {
		includes = []string{"**"}
	}
	for _, p := range includes {
		np, err := normalizePattern(p)
		if err != nil {
			return nil, err
		}
		if np != "" {
			m.includes = append(m.includes, np)
		}
	}

	excludes := fs.Excludes
	if !fs.NoDefaultExcludes {
		excludes = append(append([]string(nil), excludes...), DefaultExcludes...)
	}
	for _, p := range excludes {
		np, err := normalizePattern(p)
		if err != nil {
			return nil, err
		}
		if np == "" {
			continue
		}
		m.excludes = append(m.excludes, np)
		if dir, ok := strings.CutSuffix(np, "/**"); ok && dir != "" {
			m.prune = append(m.prune, dir)
		}
	}

	return m, nil
}

// normalizePattern converts an Ant pattern to a doublestar pattern.
func normalizePattern(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	if strings.HasSuffix(p, "/") {
		p += "**"
	}
	if !doublestar.ValidatePattern(p) {
		return "", errors.New(errors.ErrCodeInvalidPattern, "invalid file pattern: %q", p)
	}
	return p, nil
}

// includesFile reports whether the slash-separated relative path is selected.
func (m *matcher) includesFile(rel string) bool {
	if !matchAny(m.includes, rel) {
		return false
	}
	return !matchAny(m.excludes, rel)
}

// prunesDir reports whether everything below the directory is excluded.
func (m *matcher) prunesDir(rel string) bool {
	return matchAny(m.prune, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
