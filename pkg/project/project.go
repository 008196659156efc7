// Package project describes the input of one descriptor generation run.
package project

import (
	"path/filepath"
	"slices"

	"github.com/matzehuels/scrgen/pkg/classpath"
	"github.com/matzehuels/scrgen/pkg/errors"
	"github.com/matzehuels/scrgen/pkg/source"
)

// Params are the inputs to New.
type Params struct {
	Dependencies     []classpath.Artifact
	Sources          []source.Source
	ClassesDirectory string
	ClassLoader      *classpath.Loader
}

// Project is the immutable project description handed to a generator.
// It belongs to a single run and is not reused.
type Project struct {
	dependencies     []classpath.Artifact
	sources          []source.Source
	classesDirectory string
	classLoader      *classpath.Loader
}

// New assembles a Project. The classes directory must be set; it is made
// absolute but not created.
func New(p Params) (*Project, error) {
	if p.ClassesDirectory == "" {
		return nil, errors.New(errors.ErrCodeMissingOutputDir, "destdir attribute must be set!")
	}
	dir, err := filepath.Abs(p.ClassesDirectory)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingOutputDir, err, "cannot resolve destdir %q", p.ClassesDirectory)
	}
	return &Project{
		dependencies:     slices.Clone(p.Dependencies),
		sources:          slices.Clone(p.Sources),
		classesDirectory: dir,
		classLoader:      p.ClassLoader,
	}, nil
}

// Dependencies returns the resolved dependency artifacts.
func (p *Project) Dependencies() []classpath.Artifact { return slices.Clone(p.dependencies) }

// Sources returns the collected source files.
func (p *Project) Sources() []source.Source { return slices.Clone(p.sources) }

// ClassesDirectory returns the absolute output directory for compiled classes.
func (p *Project) ClassesDirectory() string { return p.classesDirectory }

// ClassLoader returns the class-loading context scoped to the dependencies.
func (p *Project) ClassLoader() *classpath.Loader { return p.classLoader }
