package task

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrgen/pkg/classpath"
	"github.com/matzehuels/scrgen/pkg/errors"
	"github.com/matzehuels/scrgen/pkg/generator"
	"github.com/matzehuels/scrgen/pkg/observability"
	"github.com/matzehuels/scrgen/pkg/options"
	"github.com/matzehuels/scrgen/pkg/project"
	"github.com/matzehuels/scrgen/pkg/source"
)

// Task is a descriptor generation build step.
// A Task is not safe for concurrent use.
type Task struct {
	// Sources selects the source files. Sources.Dir is required.
	Sources source.FileSet

	// DestDir receives the generated files. It is also appended to the classpath.
	DestDir string

	// Classpath entries, each optionally in path-list syntax.
	Classpath []string

	// ClasspathRef is a prebuilt classpath added after Classpath.
	ClasspathRef *classpath.Path

	// BaseDir resolves relative SrcDir, DestDir and classpath entries.
	// Empty means the working directory.
	BaseDir string

	// FinalName is the descriptor file name. Defaults to serviceComponents.xml.
	FinalName string

	// MetatypeName is the metatype file name. Defaults to metatype.xml.
	MetatypeName string

	// Options are validated into options.Options before any other work.
	Options options.Raw

	// Generator performs the generation.
	Generator generator.Generator

	// Logger receives progress output. Nil discards it.
	Logger *log.Logger
}

// Execute runs the build step. It returns nil on success, an *errors.Error
// for configuration and generation failures, or the generator's own error
// when that error is not a *generator.Failure.
func (t *Task) Execute(ctx context.Context) error {
	_, err := t.Run(ctx)
	return err
}

// Run is Execute but also returns the generator's result on success.
// The result is never nil when err is nil.
func (t *Task) Run(ctx context.Context) (*generator.Result, error) {
	start := time.Now()
	logger := t.logger()

	if t.Sources.Dir == "" {
		return nil, errors.New(errors.ErrCodeMissingSourceDir, "srcdir attribute must be set!")
	}

	finalName := valueOr(t.FinalName, generator.DefaultDescriptorName)
	metatypeName := valueOr(t.MetatypeName, generator.DefaultMetatypeName)
	if err := errors.ValidateOutputName("final name", finalName); err != nil {
		return nil, err
	}
	if err := errors.ValidateOutputName("metatype name", metatypeName); err != nil {
		return nil, err
	}

	fileSet := t.Sources
	fileSet.Dir = t.resolve(t.Sources.Dir)
	destDir := ""
	if t.DestDir != "" {
		destDir = t.resolve(t.DestDir)
	}
	cp := t.classpath(destDir)

	logger.Debug("Descriptor task configuration")
	logger.Debug("  fileset", "dir", fileSet.Dir, "includes", fileSet.Includes, "excludes", fileSet.Excludes)
	logger.Debug("  outputDirectory", "value", destDir)
	logger.Debug("  classpath", "value", cp.String())
	logger.Debug("  finalName", "value", finalName)
	logger.Debug("  metaTypeName", "value", metatypeName)
	logger.Debug("  generateAccessors", "value", boolOr(t.Options.GenerateAccessors, options.DefaultGenerateAccessors))
	logger.Debug("  strictMode", "value", boolOr(t.Options.StrictMode, options.DefaultStrictMode))
	logger.Debug("  specVersion", "value", t.Options.SpecVersion)

	opts, err := options.New(t.Options)
	if err != nil {
		return nil, err
	}
	if t.Generator == nil {
		return nil, errors.New(errors.ErrCodeInternal, "no generator configured")
	}

	deps := classpath.Resolve(cp.List())

	logger.Debug("Using classes from: " + cp.String())
	loader := classpath.NewLoader(classpath.SystemLoader(), cp)
	defer loader.Close()

	collectStart := time.Now()
	sources, err := source.Collect(fileSet)
	observability.Task().OnCollectComplete(ctx, fileSet.Dir, len(sources), time.Since(collectStart), err)
	if err != nil {
		return nil, err
	}

	proj, err := project.New(project.Params{
		Dependencies:     deps,
		Sources:          sources,
		ClassesDirectory: destDir,
		ClassLoader:      loader,
	})
	if err != nil {
		return nil, err
	}

	hooks := observability.Task()
	hooks.OnGenerateStart(ctx, len(sources), len(deps))
	genStart := time.Now()
	res, err := t.Generator.Generate(ctx, generator.Request{
		Project:         proj,
		Options:         opts,
		OutputDirectory: proj.ClassesDirectory(),
		DescriptorName:  finalName,
		MetatypeName:    metatypeName,
		Logger:          logger,
	})
	err = Translate(err)
	hooks.OnGenerateComplete(ctx, time.Since(genStart), err)
	if err != nil {
		return nil, err
	}

	if res == nil {
		res = &generator.Result{}
	}
	for _, f := range res.Files {
		logger.Debug("Wrote", "file", f)
	}
	logger.Infof("Processed %d sources (%s)", len(sources), time.Since(start).Round(time.Millisecond))
	return res, nil
}

// Translate maps a generator error onto the build failure model.
// Errors that are not a *generator.Failure are returned unchanged.
func Translate(err error) error {
	var f *generator.Failure
	if !errors.As(err, &f) {
		return err
	}

	if f.Kind == generator.KindFatal {
		return errors.Wrap(errors.ErrCodeFatal, f.Cause, "%s", f.Message)
	}

	be := errors.Wrap(errors.ErrCodeGeneration, f.Cause, "%s", f.Message)
	if f.HasLocation() {
		be.At(errors.Location{File: f.SourceLocation, Line: f.LineNumber})
	}
	return be
}

func (t *Task) classpath(destDir string) *classpath.Path {
	cp := classpath.NewPath(t.baseDir())
	cp.Add(t.Classpath...)
	cp.AddPath(t.ClasspathRef)
	if destDir != "" {
		cp.Add(destDir)
	}
	return cp
}

func (t *Task) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if base := t.baseDir(); base != "" {
		return filepath.Join(base, path)
	}
	return path
}

func (t *Task) baseDir() string {
	if t.BaseDir == "" {
		return ""
	}
	if abs, err := filepath.Abs(t.BaseDir); err == nil {
		return abs
	}
	return t.BaseDir
}

func (t *Task) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
