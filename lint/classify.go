package lint

// Classify maps a member descriptor to exactly one group. Annotation
// overrides are tested first; on a match the member is fully classified and
// kind/visibility rules do not apply. Classify is a pure function: the same
// descriptor always yields the same group.
//
// Whether the resulting group participates in checking is a property of the
// active GroupOrder, not of classification; see VerifyMembers.
func Classify(m MemberDescriptor) MemberGroup {
	if g, ok := groupForAnnotations(m.Annotations); ok {
		return g
	}

	private := m.Visibility == VisibilityPrivate

	switch m.Kind {
	case KindField:
		if private {
			return GroupPrivateFields
		}
		return GroupPublicFields
	case KindConstructor:
		return GroupConstructors
	case KindGetter:
		if private {
			return GroupPrivateGetters
		}
		return GroupPublicGetters
	case KindSetter:
		if private {
			return GroupPrivateSetters
		}
		return GroupPublicSetters
	default:
		// Every remaining kind is a plain method. There is no unclassifiable
		// member by construction.
		if private {
			return GroupPrivateMethods
		}
		return GroupPublicMethods
	}
}
