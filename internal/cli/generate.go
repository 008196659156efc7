package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scrgen/pkg/generator"
	"github.com/matzehuels/scrgen/pkg/options"
	"github.com/matzehuels/scrgen/pkg/source"
	"github.com/matzehuels/scrgen/pkg/task"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config            string            // optional TOML/YAML config file
	srcDir            string            // source root (required)
	destDir           string            // output directory
	baseDir           string            // base for relative paths
	classpath         []string          // classpath entries
	includes          []string          // include patterns
	excludes          []string          // exclude patterns
	defaultExcludes   bool              // apply Ant default excludes
	finalName         string            // descriptor file name
	metatypeName      string            // metatype file name
	generateAccessors bool              // generate bind/unbind methods
	strict            bool              // fail on warnings
	specVersion       string            // target DS spec version, empty for auto
	processors        []string          // annotation processor class names
	properties        map[string]string // free-form generator properties
	generator         string            // registered generator name
}

// newGenerateOpts returns the flag defaults.
func newGenerateOpts() *generateOpts {
	return &generateOpts{
		defaultExcludes:   true,
		finalName:         generator.DefaultDescriptorName,
		metatypeName:      generator.DefaultMetatypeName,
		generateAccessors: options.DefaultGenerateAccessors,
		strict:            options.DefaultStrictMode,
		generator:         generator.DryRunName,
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := newGenerateOpts()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate component descriptors from annotated sources",
		Long: `Generate Declarative Services descriptors from the annotated Java sources below --srcdir.

Classpath entries that do not exist as files are ignored. The output directory is
appended to the classpath. Flags given on the command line override values from --config.

Examples:
  scrgen generate --srcdir src/main/java --destdir target/classes
  scrgen generate --srcdir src --destdir out --classpath lib/api.jar:lib/impl.jar --spec-version 1.1
  scrgen generate --config scrgen.toml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				cfg, err := loadConfig(opts.config)
				if err != nil {
					return err
				}
				opts.merge(cfg, cmd.Flags().Changed)
			}

			logger := c.Logger.With("run", newRunID())
			ctx := withLogger(cmd.Context(), logger)
			return c.runGenerate(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "config file (.toml, .yaml)")
	f.StringVarP(&opts.srcDir, "srcdir", "s", "", "source directory to scan (required)")
	f.StringVarP(&opts.destDir, "destdir", "d", "", "output directory for generated files")
	f.StringVar(&opts.baseDir, "basedir", "", "base directory for relative paths (default: working directory)")
	f.StringArrayVar(&opts.classpath, "classpath", nil, "classpath entries, repeatable or joined with the path-list separator")
	f.StringArrayVar(&opts.includes, "include", nil, "source include pattern (default \"**\")")
	f.StringArrayVar(&opts.excludes, "exclude", nil, "source exclude pattern")
	f.BoolVar(&opts.defaultExcludes, "default-excludes", opts.defaultExcludes, "apply default excludes (VCS metadata, backup files)")
	f.StringVar(&opts.finalName, "final-name", opts.finalName, "descriptor file name")
	f.StringVar(&opts.metatypeName, "metatype-name", opts.metatypeName, "metatype file name")
	f.BoolVar(&opts.generateAccessors, "generate-accessors", opts.generateAccessors, "generate bind/unbind methods")
	f.BoolVar(&opts.strict, "strict", opts.strict, "treat warnings as failures")
	f.StringVar(&opts.specVersion, "spec-version", "", "target spec version (default: detect from annotations)")
	f.StringArrayVar(&opts.processors, "annotation-processor", nil, "annotation processor class name, repeatable")
	f.StringToStringVar(&opts.properties, "property", nil, "generator property key=value, repeatable")
	f.StringVarP(&opts.generator, "generator", "g", opts.generator, "descriptor generator backend")

	_ = cmd.RegisterFlagCompletionFunc("spec-version", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return specVersionNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("generator", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return c.Generators.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runGenerate executes one generation task and reports the result.
func (c *CLI) runGenerate(ctx context.Context, cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	gen, err := c.Generators.Get(opts.generator)
	if err != nil {
		return err
	}

	t := opts.task(gen)
	t.Logger = logger

	prog := newProgress(logger)
	res, err := t.Run(ctx)
	if err != nil {
		return err
	}
	prog.done("Generated descriptors")

	out := cmd.OutOrStdout()
	if len(res.Files) == 0 {
		printSuccess(out, "Processed sources with %s", StyleHighlight.Render(opts.generator))
		printDetail(out, "No files written")
		return nil
	}
	printSuccess(out, "Descriptors generated with %s", StyleHighlight.Render(opts.generator))
	for _, f := range res.Files {
		printFile(out, f)
	}
	return nil
}

// task converts the flags into a build task.
func (o *generateOpts) task(gen generator.Generator) *task.Task {
	return &task.Task{
		Sources: source.FileSet{
			Dir:               o.srcDir,
			Includes:          o.includes,
			Excludes:          o.excludes,
			NoDefaultExcludes: !o.defaultExcludes,
		},
		DestDir:      o.destDir,
		Classpath:    o.classpath,
		BaseDir:      o.baseDir,
		FinalName:    o.finalName,
		MetatypeName: o.metatypeName,
		Options: options.Raw{
			SpecVersion:          o.specVersion,
			StrictMode:           options.Bool(o.strict),
			GenerateAccessors:    options.Bool(o.generateAccessors),
			Properties:           o.properties,
			AnnotationProcessors: o.processors,
		},
		Generator: gen,
	}
}

// merge copies config values into opts for every flag the user did not set.
func (o *generateOpts) merge(cfg *fileConfig, changed func(string) bool) {
	setString := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	setList := func(flag string, dst *[]string, v []string) {
		if len(v) > 0 && !changed(flag) {
			*dst = v
		}
	}
	setBool := func(flag string, dst *bool, v *bool) {
		if v != nil && !changed(flag) {
			*dst = *v
		}
	}

	setString("srcdir", &o.srcDir, cfg.SrcDir)
	setString("destdir", &o.destDir, cfg.DestDir)
	setString("basedir", &o.baseDir, cfg.BaseDir)
	setList("classpath", &o.classpath, cfg.Classpath)
	setList("include", &o.includes, cfg.Includes)
	setList("exclude", &o.excludes, cfg.Excludes)
	setBool("default-excludes", &o.defaultExcludes, cfg.DefaultExcludes)
	setString("final-name", &o.finalName, cfg.FinalName)
	setString("metatype-name", &o.metatypeName, cfg.MetatypeName)
	setBool("generate-accessors", &o.generateAccessors, cfg.GenerateAccessors)
	setBool("strict", &o.strict, cfg.StrictMode)
	setString("spec-version", &o.specVersion, cfg.SpecVersion)
	setList("annotation-processor", &o.processors, cfg.AnnotationProcessors)
	setString("generator", &o.generator, cfg.Generator)
	if len(cfg.Properties) > 0 && !changed("property") {
		o.properties = cfg.Properties
	}
}
