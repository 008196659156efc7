// Package source discovers the source files a descriptor is generated from.
//
// [Collect] walks a [FileSet] rooted at a directory, applies Ant-style
// include and exclude patterns, keeps files with the ".java" extension and
// derives each file's fully-qualified class name from its path relative to
// the root:
//
//	root/org/example/Foo.java  →  org.example.Foo
//	root/Bar.java              →  Bar
//
// Patterns use slash-separated paths relative to the root. "**" matches any
// number of directories, "*" matches within one path segment, and a pattern
// ending in "/" is shorthand for "<pattern>/**". Excludes take precedence
// over includes. Unless disabled, the Ant default excludes (version-control
// metadata and editor backup files) are always applied.
//
// The extension filter is applied after pattern matching, so no include
// pattern can admit a file that is not a Java source.
package source
