// Package classpath resolves build classpaths for descriptor generation.
//
// A classpath is an ordered list of file-system locations holding compiled
// dependency artifacts. This package provides three pieces:
//
//   - [Path]: an ordered, de-duplicated list of absolute locations built from
//     user input in path-list syntax ("a.jar:lib/b.jar" on Unix).
//   - [Resolve]: filters a classpath down to the entries that currently exist
//     as regular files. Missing entries and directories are dropped silently;
//     absent classes surface later as generator failures.
//   - [Loader]: the class-loading context handed opaquely to the generator.
//     It holds every classpath location (directories included) chained to a
//     parent context, and is released with [Loader.Close] once generation
//     returns.
//
// # Usage
//
//	cp := classpath.NewPath(baseDir)
//	cp.Add("lib/api.jar:lib/impl.jar", "target/classes")
//
//	deps := classpath.Resolve(cp.List())
//	loader := classpath.NewLoader(classpath.SystemLoader(), cp)
//	defer loader.Close()
package classpath
