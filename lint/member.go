package lint

// MemberKind classifies a class member by its declaration form.
type MemberKind string

const (
	KindField       MemberKind = "field"
	KindConstructor MemberKind = "constructor"
	KindMethod      MemberKind = "method"
	KindGetter      MemberKind = "getter"
	KindSetter      MemberKind = "setter"
)

// Visibility indicates whether a member is public or private.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// MemberDescriptor is one class member as it appears in source, in the shape
// the host's parser hands to the core. The core never derives any of these
// fields itself; it only classifies and orders them.
type MemberDescriptor struct {
	// Kind is the declaration form of the member.
	Kind MemberKind

	// Name is the declared name. Constructors carry the constructor's own
	// name, which is empty for the unnamed/default constructor.
	Name string

	// Visibility is derived by the host from modifiers or naming convention.
	Visibility Visibility

	// Annotations are the raw annotation names on the member, in source
	// order, without the marker sigil (e.g. "Input", not "@Input").
	Annotations []string

	// Location metadata owned by the host; carried through untouched so the
	// host can point diagnostics at the member.
	Line   int
	Column int
}
