// Package task orchestrates one descriptor generation build step.
//
// A [Task] carries the build-step attributes: the source file set, the
// output directory, the classpath, the generated file names and the raw
// generation options. [Task.Execute] runs, strictly in order:
//
//  1. validate the configuration (source directory, file names, options)
//  2. resolve the classpath into dependency artifacts
//  3. build the class-loading context
//  4. collect the sources
//  5. assemble the project
//  6. call the generator exactly once
//  7. translate the generator's outcome into a build failure
//
// # Failure Mapping
//
// Generator failures become *errors.Error values:
//
//   - a descriptor failure naming a source file keeps that file and line as
//     the error Location
//   - a descriptor failure without a source file carries no Location
//   - a fatal failure never carries a Location, even when one is attached
//
// Any other error returned by the generator is passed through unchanged.
// Nothing is retried.
package task
