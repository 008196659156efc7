// Package pkg provides the libraries behind scrgen, a build step that prepares
// component descriptor generation for a Java source tree.
//
// # Overview
//
// A build invocation runs through five stages:
//
//  1. [classpath] - Dependency resolution and the class-loading context
//  2. [source] - Source collection from a pattern-filtered file set
//  3. [options] - Generator configuration (spec version, strict mode, properties)
//  4. [project] - The project model handed to a generator
//  5. [task] - Orchestration and failure translation
//
// Generators implement [generator.Generator] and are looked up by name from a
// [generator.Registry]. Errors carry stable codes from [errors]; failures
// raised while processing a source file also carry its location.
//
// # Data Flow
//
//	srcdir + patterns      classpath entries
//	        ↓                      ↓
//	source.Collect         classpath.Resolve / NewLoader
//	        ↓                      ↓
//	        └──── project.New ─────┘
//	                   ↓
//	        generator.Generate(Request)
//	                   ↓
//	           task.Translate(err)
//
// Stage events are reported through [observability.TaskHooks].
//
// [classpath]: github.com/matzehuels/scrgen/pkg/classpath
// [source]: github.com/matzehuels/scrgen/pkg/source
// [options]: github.com/matzehuels/scrgen/pkg/options
// [project]: github.com/matzehuels/scrgen/pkg/project
// [task]: github.com/matzehuels/scrgen/pkg/task
// [generator.Generator]: github.com/matzehuels/scrgen/pkg/generator#Generator
// [generator.Registry]: github.com/matzehuels/scrgen/pkg/generator#Registry
// [errors]: github.com/matzehuels/scrgen/pkg/errors
// [observability.TaskHooks]: github.com/matzehuels/scrgen/pkg/observability#TaskHooks
package pkg
