package generator

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrgen/pkg/options"
	"github.com/matzehuels/scrgen/pkg/project"
)

// Default output file names.
const (
	DefaultDescriptorName = "serviceComponents.xml"
	DefaultMetatypeName   = "metatype.xml"
)

// Generator produces component descriptors for a project.
type Generator interface {
	// Generate runs once per request. It returns nil on success, a *Failure
	// for generation problems, or any other error for unexpected faults.
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Func adapts a function to the Generator interface.
type Func func(ctx context.Context, req Request) (*Result, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, req Request) (*Result, error) { return f(ctx, req) }

// Request is the input of one generation run.
type Request struct {
	Project         *project.Project
	Options         options.Options
	OutputDirectory string
	DescriptorName  string
	MetatypeName    string
	Logger          *log.Logger
}

// Log returns the request logger, or a discarding logger when none is set.
func (r Request) Log() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Result describes a successful run.
type Result struct {
	// Files lists the paths written below the output directory.
	Files []string
}
