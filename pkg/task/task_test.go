package task

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/scrgen/pkg/classpath"
	screrrors "github.com/matzehuels/scrgen/pkg/errors"
	"github.com/matzehuels/scrgen/pkg/generator"
	"github.com/matzehuels/scrgen/pkg/observability"
	"github.com/matzehuels/scrgen/pkg/options"
	"github.com/matzehuels/scrgen/pkg/source"
)

// recorder is a generator that records its requests and returns err.
type recorder struct {
	calls  int
	req    generator.Request
	loader *classpath.Loader
	err    error
	res    *generator.Result
}

func (r *recorder) Generate(_ context.Context, req generator.Request) (*generator.Result, error) {
	r.calls++
	r.req = req
	r.loader = req.Project.ClassLoader()
	return r.res, r.err
}

type fixture struct {
	root    string
	srcDir  string
	destDir string
	jar     string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	f := fixture{
		root:    root,
		srcDir:  filepath.Join(root, "src"),
		destDir: filepath.Join(root, "classes"),
		jar:     filepath.Join(root, "lib", "api.jar"),
	}
	for _, p := range []string{
		filepath.Join(f.srcDir, "a", "B.java"),
		filepath.Join(f.srcDir, "a", "C.txt"),
		f.jar,
	} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(f.destDir, 0755); err != nil {
		t.Fatal(err)
	}
	return f
}

func (f fixture) task(gen generator.Generator) *Task {
	return &Task{
		Sources:   source.FileSet{Dir: f.srcDir},
		DestDir:   f.destDir,
		Classpath: []string{f.jar, filepath.Join(f.root, "missing.jar")},
		Generator: gen,
	}
}

func TestExecute(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{res: &generator.Result{Files: []string{"OSGI-INF/serviceComponents.xml"}}}

	if err := f.task(rec).Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if rec.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", rec.calls)
	}
	req := rec.req
	if req.DescriptorName != generator.DefaultDescriptorName || req.MetatypeName != generator.DefaultMetatypeName {
		t.Errorf("file names = %q, %q", req.DescriptorName, req.MetatypeName)
	}
	if req.OutputDirectory != f.destDir {
		t.Errorf("OutputDirectory = %q, want %q", req.OutputDirectory, f.destDir)
	}
	if diff := cmp.Diff([]string{"a.B"}, source.ClassNames(req.Project.Sources())); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]classpath.Artifact{{Path: f.jar}}, req.Project.Dependencies()); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if !req.Options.SpecVersion().IsAuto() {
		t.Errorf("SpecVersion = %v, want auto", req.Options.SpecVersion())
	}
	if !req.Options.GenerateAccessors() || req.Options.StrictMode() {
		t.Error("options should carry defaults")
	}
}

func TestExecute_ClassLoader(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}

	if err := f.task(rec).Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !rec.loader.Closed() {
		t.Error("class loader should be released after generation")
	}

	// Capture locations during generation.
	var locs []string
	gen := generator.Func(func(_ context.Context, req generator.Request) (*generator.Result, error) {
		locs = req.Project.ClassLoader().Own()
		return nil, nil
	})
	if err := f.task(gen).Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := []string{f.jar, filepath.Join(f.root, "missing.jar"), f.destDir}
	if diff := cmp.Diff(want, locs); diff != "" {
		t.Errorf("loader locations mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_ClasspathRef(t *testing.T) {
	f := newFixture(t)
	extra := filepath.Join(f.root, "lib", "extra.jar")
	if err := os.WriteFile(extra, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	ref := classpath.NewPath(f.root)
	ref.Add("lib/extra.jar", f.jar)

	rec := &recorder{}
	task := f.task(rec)
	task.ClasspathRef = ref
	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	wantDeps := []classpath.Artifact{{Path: f.jar}, {Path: extra}}
	if diff := cmp.Diff(wantDeps, rec.req.Project.Dependencies()); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Result(t *testing.T) {
	f := newFixture(t)

	want := &generator.Result{Files: []string{"OSGI-INF/serviceComponents.xml"}}
	res, err := f.task(&recorder{res: want}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Run() result mismatch (-want +got):\n%s", diff)
	}

	res, err = f.task(&recorder{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res == nil || len(res.Files) != 0 {
		t.Errorf("Run() with nil generator result = %+v, want empty result", res)
	}

	res, err = f.task(&recorder{res: want, err: generator.FatalError("boom", nil)}).Run(context.Background())
	if err == nil || res != nil {
		t.Errorf("Run() on failure = %v, %v; want nil result and error", res, err)
	}
}

func TestExecute_Options(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	task := f.task(rec)
	task.FinalName = "OSGI-INF/components.xml"
	task.MetatypeName = "OSGI-INF/metatype/meta.xml"
	task.Options = options.Raw{
		SpecVersion:          "1.1-felix",
		StrictMode:           options.Bool(true),
		GenerateAccessors:    options.Bool(false),
		Properties:           map[string]string{"k": "v"},
		AnnotationProcessors: []string{"com.example.Provider"},
	}

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	req := rec.req
	if req.DescriptorName != "OSGI-INF/components.xml" || req.MetatypeName != "OSGI-INF/metatype/meta.xml" {
		t.Errorf("file names = %q, %q", req.DescriptorName, req.MetatypeName)
	}
	if req.Options.SpecVersion() != options.SpecVersion11Felix {
		t.Errorf("SpecVersion = %v", req.Options.SpecVersion())
	}
	if !req.Options.StrictMode() || req.Options.GenerateAccessors() {
		t.Error("flags not passed through")
	}
	if diff := cmp.Diff([]string{"com.example.Provider"}, req.Options.AnnotationProcessors()); diff != "" {
		t.Errorf("processors mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_BaseDir(t *testing.T) {
	f := newFixture(t)
	rec := &recorder{}
	task := &Task{
		Sources:   source.FileSet{Dir: "src"},
		DestDir:   "classes",
		Classpath: []string{filepath.Join("lib", "api.jar")},
		BaseDir:   f.root,
		Generator: rec,
	}

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if rec.req.OutputDirectory != f.destDir {
		t.Errorf("OutputDirectory = %q, want %q", rec.req.OutputDirectory, f.destDir)
	}
	if diff := cmp.Diff([]classpath.Artifact{{Path: f.jar}}, rec.req.Project.Dependencies()); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if src := rec.req.Project.Sources(); len(src) != 1 || src[0].File != filepath.Join(f.srcDir, "a", "B.java") {
		t.Errorf("sources = %v", src)
	}
}

func TestExecute_ConfigurationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		modify func(*Task)
		code   screrrors.Code
	}{
		{"unset srcdir", func(t *Task) { t.Sources.Dir = "" }, screrrors.ErrCodeMissingSourceDir},
		{"missing srcdir", func(t *Task) { t.Sources.Dir = filepath.Join(f.root, "nope") }, screrrors.ErrCodeInvalidSourceDir},
		{"unknown spec version", func(t *Task) { t.Options.SpecVersion = "bogus" }, screrrors.ErrCodeUnknownSpecVersion},
		{"unset destdir", func(t *Task) { t.DestDir = "" }, screrrors.ErrCodeMissingOutputDir},
		{"bad final name", func(t *Task) { t.FinalName = "../escape.xml" }, screrrors.ErrCodeInvalidConfig},
		{"bad metatype name", func(t *Task) { t.MetatypeName = "/abs/meta.xml" }, screrrors.ErrCodeInvalidConfig},
		{"bad pattern", func(t *Task) { t.Sources.Includes = []string{"[a"} }, screrrors.ErrCodeInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			task := f.task(rec)
			tt.modify(task)

			err := task.Execute(context.Background())
			if !screrrors.Is(err, tt.code) {
				t.Fatalf("Execute() error = %v, want %s", err, tt.code)
			}
			if rec.calls != 0 {
				t.Errorf("generator called %d times on configuration error", rec.calls)
			}
		})
	}
}

func TestExecute_NoGenerator(t *testing.T) {
	f := newFixture(t)
	err := f.task(nil).Execute(context.Background())
	if !screrrors.Is(err, screrrors.ErrCodeInternal) {
		t.Fatalf("Execute() error = %v, want %s", err, screrrors.ErrCodeInternal)
	}
}

func TestExecute_FailureMapping(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("underlying")

	tests := []struct {
		name    string
		err     error
		code    screrrors.Code
		message string
		loc     string // empty means no location
	}{
		{
			name:    "descriptor error with location",
			err:     generator.DescriptorError("Missing component name", cause, "Foo.java", 42),
			code:    screrrors.ErrCodeGeneration,
			message: "Missing component name",
			loc:     "Foo.java:42",
		},
		{
			name:    "descriptor error without location",
			err:     generator.DescriptorError("Duplicate reference", cause, "", 0),
			code:    screrrors.ErrCodeGeneration,
			message: "Duplicate reference",
		},
		{
			name:    "descriptor error with unknown line",
			err:     generator.DescriptorError("Bad tag", cause, "Foo.java", 0),
			code:    screrrors.ErrCodeGeneration,
			message: "Bad tag",
			loc:     "Foo.java",
		},
		{
			name:    "fatal error drops location",
			err:     &generator.Failure{Kind: generator.KindFatal, Message: "Cannot load classes", Cause: cause, SourceLocation: "Foo.java", LineNumber: 42},
			code:    screrrors.ErrCodeFatal,
			message: "Cannot load classes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{err: tt.err}
			err := f.task(rec).Execute(context.Background())

			var be *screrrors.Error
			if !errors.As(err, &be) {
				t.Fatalf("Execute() error = %T %v, want *errors.Error", err, err)
			}
			if be.Code != tt.code {
				t.Errorf("Code = %s, want %s", be.Code, tt.code)
			}
			if be.Message != tt.message {
				t.Errorf("Message = %q, want %q", be.Message, tt.message)
			}
			if be.Cause != cause {
				t.Errorf("Cause = %v, want %v", be.Cause, cause)
			}

			loc, ok := screrrors.LocationOf(err)
			if tt.loc == "" {
				if ok {
					t.Errorf("Location = %s, want none", loc)
				}
				return
			}
			if !ok || loc.String() != tt.loc {
				t.Errorf("Location = %v (%v), want %s", loc, ok, tt.loc)
			}
		})
	}
}

func TestExecute_UnclassifiedErrorPropagates(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	rec := &recorder{err: boom}

	err := f.task(rec).Execute(context.Background())
	if err != boom {
		t.Fatalf("Execute() error = %v, want the generator's error unchanged", err)
	}
	if rec.calls != 1 {
		t.Errorf("generator calls = %d, want exactly 1", rec.calls)
	}
}

func TestExecute_Logging(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	task := f.task(&recorder{})
	task.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	task.Options.SpecVersion = "1.2"

	if err := task.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Using classes from:", "specVersion", "1.2", "Processed 1 sources"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslate(t *testing.T) {
	if Translate(nil) != nil {
		t.Error("Translate(nil) should be nil")
	}

	plain := errors.New("plain")
	if Translate(plain) != plain {
		t.Error("Translate should pass unclassified errors through")
	}
}

type stageHooks struct {
	observability.NoopTaskHooks
	collected   int
	starts      int
	completeErr error
}

func (h *stageHooks) OnCollectComplete(_ context.Context, _ string, n int, _ time.Duration, _ error) {
	h.collected = n
}

func (h *stageHooks) OnGenerateStart(context.Context, int, int) { h.starts++ }

func (h *stageHooks) OnGenerateComplete(_ context.Context, _ time.Duration, err error) {
	h.completeErr = err
}

func TestExecute_Hooks(t *testing.T) {
	h := &stageHooks{}
	observability.SetTaskHooks(h)
	t.Cleanup(observability.Reset)

	f := newFixture(t)
	rec := &recorder{err: generator.DescriptorError("Missing component name", nil, "Foo.java", 42)}
	err := f.task(rec).Execute(context.Background())

	if h.collected != 1 {
		t.Errorf("collected = %d, want 1", h.collected)
	}
	if h.starts != 1 {
		t.Errorf("starts = %d, want 1", h.starts)
	}
	if h.completeErr == nil || screrrors.GetCode(h.completeErr) != screrrors.ErrCodeGeneration {
		t.Errorf("complete error = %v, want translated generation error", h.completeErr)
	}
	if !errors.Is(err, h.completeErr) {
		t.Errorf("Execute() = %v, want hooks to see the same error", err)
	}
}
