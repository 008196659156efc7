// Package generator defines the contract between scrgen and a descriptor
// generation backend.
//
// A backend implements [Generator]. It receives the assembled project and
// options in a [Request], writes the component descriptor (and the metatype
// file when the sources declare configuration) below the output directory,
// and either succeeds or returns a *[Failure]:
//
//   - [DescriptorError]: a generation problem such as a malformed
//     annotation. It may name the source file and line that caused it.
//   - [FatalError]: the backend could not attempt generation at all.
//
// Any other error is treated as unexpected and is propagated unchanged by
// the orchestrating task.
//
// # Registry
//
// Backends are looked up by name in a [Registry]. [Default] holds the
// built-in backends:
//
//   - "dry-run": validates the output directory and logs the descriptor it
//     would generate, writing nothing.
//
// Programs that link a real backend register it at startup:
//
//	generator.Default.Register("felix", func() generator.Generator { return felix.New() })
package generator
