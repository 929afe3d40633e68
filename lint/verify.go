package lint

// MemberOrderVerdict is the core's output for one checked member.
type MemberOrderVerdict struct {
	// Member is the descriptor the verdict was computed for.
	Member MemberDescriptor

	// Group the member was classified into.
	Group MemberGroup

	// IsWrong is set when the member's group is out of order relative to the
	// preceding member, or when it continues an already-violating run of the
	// same group.
	IsWrong bool

	// IsAlphabeticallyWrong is set when alphabetization is enabled and the
	// member's name is not strictly greater than the preceding same-group
	// member's name. It is never set across a group boundary.
	IsAlphabeticallyWrong bool

	// PreviousGroup is the group to cite in the "<group> should be before
	// <previousGroup>" diagnostic. Within a run of same-group members it is
	// inherited from the last group change, so the whole run blames the same
	// offending predecessor group.
	PreviousGroup MemberGroup

	// Name and PreviousName carry the string context for the alphabetical
	// diagnostic.
	Name         string
	PreviousName string
}

// VerifyMembers checks the ordered members of one type declaration against
// the configured group order. Members whose group is absent from the order
// are excluded: they produce no verdict and never become the "previous
// member" for rank or alphabetical comparison.
//
// State is a fold over the member list: each verdict depends only on the
// previous checked member's verdict and the static order. The first checked
// member of a declaration never violates.
func VerifyMembers(members []MemberDescriptor, order GroupOrder, alphabetize bool) []MemberOrderVerdict {
	verdicts := make([]MemberOrderVerdict, 0, len(members))
	var prev *MemberOrderVerdict

	for _, m := range members {
		g := Classify(m)
		if !order.Contains(g) {
			continue
		}

		v := MemberOrderVerdict{
			Member: m,
			Group:  g,
			Name:   m.Name,
		}

		if prev != nil {
			sameGroup := prev.Group == g
			if sameGroup {
				v.PreviousGroup = prev.PreviousGroup
			} else {
				v.PreviousGroup = prev.Group
			}

			prevRank, _ := order.Rank(prev.Group)
			rank, _ := order.Rank(g)
			v.IsWrong = (sameGroup && prev.IsWrong) || prevRank > rank

			// Ties count as violations. Comparison is case-sensitive and
			// never crosses a group boundary, even when the rank check
			// already flagged that boundary.
			if alphabetize && sameGroup && m.Name <= prev.Name {
				v.IsAlphabeticallyWrong = true
			}

			v.PreviousName = prev.Name
		}

		verdicts = append(verdicts, v)
		prev = &verdicts[len(verdicts)-1]
	}

	return verdicts
}
