// Package lint implements the member-ordering core: a classification taxonomy
// for class members and a sequence verifier that decides, for each member of a
// type body, whether it appears in the configured relative order and whether
// same-group members are alphabetized.
//
// The package is pure: it consumes member descriptors supplied by a host
// (typically the parser package), performs no I/O, and returns structured
// verdicts. Each type body is verified independently, so hosts may run
// verifications in parallel without coordination.
package lint

// MemberGroup identifies one bucket of the member classification taxonomy.
// Groups are compared by key; their position in a GroupOrder is separate.
type MemberGroup string

// Generic groups, reachable through kind/visibility classification.
const (
	GroupPublicFields   MemberGroup = "public-fields"
	GroupPrivateFields  MemberGroup = "private-fields"
	GroupPublicGetters  MemberGroup = "public-getters"
	GroupPrivateGetters MemberGroup = "private-getters"
	GroupPublicSetters  MemberGroup = "public-setters"
	GroupPrivateSetters MemberGroup = "private-setters"
	GroupConstructors   MemberGroup = "constructors"
	GroupPublicMethods  MemberGroup = "public-methods"
	GroupPrivateMethods MemberGroup = "private-methods"
)

// Framework groups, reachable only through annotation overrides.
const (
	GroupInputs          MemberGroup = "inputs"
	GroupOutputs         MemberGroup = "outputs"
	GroupHostBindings    MemberGroup = "host-bindings"
	GroupHostListeners   MemberGroup = "host-listeners"
	GroupViewChildren    MemberGroup = "view-children"
	GroupContentChildren MemberGroup = "content-children"
)

// groupDisplayNames maps group keys to the names used in diagnostics.
var groupDisplayNames = map[MemberGroup]string{
	GroupPublicFields:    "public fields",
	GroupPrivateFields:   "private fields",
	GroupPublicGetters:   "public getters",
	GroupPrivateGetters:  "private getters",
	GroupPublicSetters:   "public setters",
	GroupPrivateSetters:  "private setters",
	GroupConstructors:    "constructors",
	GroupPublicMethods:   "public methods",
	GroupPrivateMethods:  "private methods",
	GroupInputs:          "inputs",
	GroupOutputs:         "outputs",
	GroupHostBindings:    "host bindings",
	GroupHostListeners:   "host listeners",
	GroupViewChildren:    "view children",
	GroupContentChildren: "content children",
}

// DefaultOrder is the builtin canonical group order used when no order is
// configured. Framework groups are absent, so annotated members are excluded
// from checking unless the configuration opts them in.
var DefaultOrder = []MemberGroup{
	GroupPublicFields,
	GroupPrivateFields,
	GroupPublicGetters,
	GroupPrivateGetters,
	GroupPublicSetters,
	GroupPrivateSetters,
	GroupConstructors,
	GroupPublicMethods,
	GroupPrivateMethods,
}

// String returns the stable group key.
func (g MemberGroup) String() string {
	return string(g)
}

// DisplayName returns the human-readable name used in diagnostics.
func (g MemberGroup) DisplayName() string {
	if name, ok := groupDisplayNames[g]; ok {
		return name
	}
	return string(g)
}

// KnownGroup resolves a group key to its MemberGroup. It returns false for
// keys outside the taxonomy.
func KnownGroup(key string) (MemberGroup, bool) {
	g := MemberGroup(key)
	_, ok := groupDisplayNames[g]
	return g, ok
}
