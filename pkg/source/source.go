package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/scrgen/pkg/errors"
)

// Extension is the file suffix that identifies a source file.
const Extension = ".java"

// Source is one discovered source file.
type Source struct {
	File      string // absolute path
	ClassName string // dotted name relative to the root, without extension
}

// NewSource derives the Source for file under root. Both paths must be
// absolute and cleaned, and file must end in [Extension].
//
// A file outside root is a programming error and yields an INTERNAL_ERROR.
func NewSource(root, file string) (Source, error) {
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if !strings.HasPrefix(file, prefix) || len(file) <= len(prefix) {
		return Source{}, errors.New(errors.ErrCodeInternal, "source %s is not under root %s", file, root)
	}
	if !strings.HasSuffix(file, Extension) {
		return Source{}, errors.New(errors.ErrCodeInternal, "source %s does not end in %s", file, Extension)
	}

	name := file[len(prefix):]
	name = strings.ReplaceAll(name, string(os.PathSeparator), "/")
	name = strings.ReplaceAll(name, "/", ".")
	name = name[:len(name)-len(Extension)]

	return Source{File: file, ClassName: name}, nil
}

// ClassNames returns the class names of sources in order.
func ClassNames(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.ClassName
	}
	return names
}

// absRoot cleans dir into an absolute path.
func absRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidSourceDir, err, "cannot resolve srcdir %q", dir)
	}
	return abs, nil
}
