package generator

import (
	"context"
	"os"
	"path/filepath"
)

// DryRunName is the registry name of the dry-run backend.
const DryRunName = "dry-run"

// DryRun is a backend that plans generation without writing descriptors.
// It checks that the output directory exists or can be created.
type DryRun struct{}

// NewDryRun creates the dry-run backend.
func NewDryRun() *DryRun { return &DryRun{} }

// Generate logs the planned output. A missing project or an output
// directory that cannot be created is a fatal failure.
func (DryRun) Generate(ctx context.Context, req Request) (*Result, error) {
	logger := req.Log()
	if req.Project == nil {
		return nil, FatalError("no project to generate descriptors for", nil)
	}
	if err := os.MkdirAll(req.OutputDirectory, 0755); err != nil {
		return nil, FatalError("cannot create output directory "+req.OutputDirectory, err)
	}

	for _, src := range req.Project.Sources() {
		logger.Debug("Would scan", "class", src.ClassName, "file", src.File)
	}
	logger.Info("Dry run",
		"sources", len(req.Project.Sources()),
		"dependencies", len(req.Project.Dependencies()),
		"specVersion", req.Options.SpecVersion(),
		"descriptor", filepath.Join(req.OutputDirectory, req.DescriptorName),
		"metatype", filepath.Join(req.OutputDirectory, req.MetatypeName),
	)
	return &Result{}, nil
}
