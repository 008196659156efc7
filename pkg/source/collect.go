package source

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/matzehuels/scrgen/pkg/errors"
)

// Collect returns every source file selected by set, in lexical walk order.
//
// Symbolic links to files and directories are followed, including a
// symlinked root. Source paths stay under the root as given, so a link named
// x contributes classes named x.*. A directory reached twice through links is
// walked only once.
//
// An unset or missing root directory is a configuration error; it never
// yields an empty result.
func Collect(set FileSet) ([]Source, error) {
	if set.Dir == "" {
		return nil, errors.New(errors.ErrCodeMissingSourceDir, "srcdir attribute must be set!")
	}

	root, err := absRoot(set.Dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeInvalidSourceDir, "srcdir %q does not exist!", root)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSourceDir, err, "cannot read srcdir %q", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidSourceDir, "srcdir %q is not a directory!", root)
	}

	m, err := set.matcher()
	if err != nil {
		return nil, err
	}

	w := &walker{m: m, root: root, visited: make(map[string]bool)}
	if err := w.walk(root, ""); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidSourceDir, err, "cannot scan srcdir %q", root)
	}

	return w.sources, nil
}

// walker collects sources below root. visited holds the resolved paths of
// directories already walked.
type walker struct {
	m       *matcher
	root    string
	visited map[string]bool
	sources []Source
}

// walk visits dir, whose slash-separated path relative to the root is rel.
func (w *walker) walk(dir, rel string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if w.visited[resolved] {
		return nil
	}
	w.visited[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		name := e.Name()
		file := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		mode := e.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(file)
			if err != nil {
				// dangling link
				continue
			}
			mode = info.Mode()
		}

		switch {
		case mode.IsDir():
			if w.m.prunesDir(childRel) {
				continue
			}
			if err := w.walk(file, childRel); err != nil {
				return err
			}
		case mode.IsRegular():
			if !strings.HasSuffix(name, Extension) || !w.m.includesFile(childRel) {
				continue
			}
			src, err := NewSource(w.root, file)
			if err != nil {
				return err
			}
			w.sources = append(w.sources, src)
		}
	}
	return nil
}
