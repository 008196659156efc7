// Package options assembles validated generation options.
//
// [New] turns raw user input into an immutable [Options] value. The only
// validation performed here is the spec version: a non-empty name that is
// not a known version fails before any generation work starts. Annotation
// processor names are passed through untouched; loading them is the
// generator's concern.
package options

import (
	"maps"
	"slices"
)

// Defaults for unset flags.
const (
	DefaultStrictMode        = false
	DefaultGenerateAccessors = true
)

// Raw holds unvalidated option values as supplied by the user.
// Nil booleans take their defaults.
type Raw struct {
	SpecVersion          string            `json:"spec_version,omitempty"`
	StrictMode           *bool             `json:"strict_mode,omitempty"`
	GenerateAccessors    *bool             `json:"generate_accessors,omitempty"`
	Properties           map[string]string `json:"properties,omitempty"`
	AnnotationProcessors []string          `json:"annotation_processors,omitempty"`
}

// Options are the validated generation options.
type Options struct {
	strictMode           bool
	generateAccessors    bool
	specVersion          SpecVersion
	properties           map[string]string
	annotationProcessors []string
}

// New validates raw and returns the options.
func New(raw Raw) (Options, error) {
	version, err := ParseSpecVersion(raw.SpecVersion)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		strictMode:           DefaultStrictMode,
		generateAccessors:    DefaultGenerateAccessors,
		specVersion:          version,
		properties:           map[string]string{},
		annotationProcessors: []string{},
	}
	if raw.StrictMode != nil {
		opts.strictMode = *raw.StrictMode
	}
	if raw.GenerateAccessors != nil {
		opts.generateAccessors = *raw.GenerateAccessors
	}
	if raw.Properties != nil {
		opts.properties = maps.Clone(raw.Properties)
	}
	if raw.AnnotationProcessors != nil {
		opts.annotationProcessors = slices.Clone(raw.AnnotationProcessors)
	}
	return opts, nil
}

// Default returns the options produced by an empty Raw.
func Default() Options {
	opts, _ := New(Raw{})
	return opts
}

// StrictMode reports whether warnings are treated as failures.
func (o Options) StrictMode() bool { return o.strictMode }

// GenerateAccessors reports whether bind/unbind methods are generated.
func (o Options) GenerateAccessors() bool { return o.generateAccessors }

// SpecVersion returns the target version, SpecVersionAuto when unset.
func (o Options) SpecVersion() SpecVersion { return o.specVersion }

// Properties returns a copy of the free-form properties.
func (o Options) Properties() map[string]string { return maps.Clone(o.properties) }

// Property returns a single property value.
func (o Options) Property(key string) (string, bool) {
	v, ok := o.properties[key]
	return v, ok
}

// AnnotationProcessors returns a copy of the processor class names.
func (o Options) AnnotationProcessors() []string { return slices.Clone(o.annotationProcessors) }

// Bool returns a pointer to b, for populating Raw.
func Bool(b bool) *bool { return &b }
