package options

import "github.com/matzehuels/scrgen/pkg/errors"

// SpecVersion selects the Declarative Services specification version a
// descriptor is generated for.
type SpecVersion int

// Known specification versions. SpecVersionAuto asks the generator to detect
// the version from the annotations it discovers.
const (
	SpecVersionAuto SpecVersion = iota
	SpecVersion10
	SpecVersion11
	SpecVersion11Felix
	SpecVersion12
)

var specVersionNames = map[SpecVersion]string{
	SpecVersion10:      "1.0",
	SpecVersion11:      "1.1",
	SpecVersion11Felix: "1.1-felix",
	SpecVersion12:      "1.2",
}

// SpecVersions returns the known versions in ascending order, excluding SpecVersionAuto.
func SpecVersions() []SpecVersion {
	return []SpecVersion{SpecVersion10, SpecVersion11, SpecVersion11Felix, SpecVersion12}
}

// String returns the version name, or "auto" for SpecVersionAuto.
func (v SpecVersion) String() string {
	if name, ok := specVersionNames[v]; ok {
		return name
	}
	return "auto"
}

// IsAuto reports whether the version is left to the generator to detect.
func (v SpecVersion) IsAuto() bool {
	return v == SpecVersionAuto
}

// ParseSpecVersion maps a version name to its SpecVersion. The empty string
// maps to SpecVersionAuto. Names are matched exactly; any other value is an
// UNKNOWN_SPEC_VERSION error.
func ParseSpecVersion(name string) (SpecVersion, error) {
	if name == "" {
		return SpecVersionAuto, nil
	}
	for _, v := range SpecVersions() {
		if specVersionNames[v] == name {
			return v, nil
		}
	}
	return SpecVersionAuto, errors.New(errors.ErrCodeUnknownSpecVersion, "Unknown spec version specified: %s", name)
}
