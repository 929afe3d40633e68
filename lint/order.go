package lint

import "fmt"

// ConfigError reports an invalid group-order configuration. It is raised once
// while building the order, before any member is processed, and is fatal to
// the verification run for that configuration.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid group order: %s %q", e.Reason, e.Key)
}

// GroupOrder is the canonical ordering of member groups for one verification
// run. A group's rank is its index in the order; groups absent from the order
// are excluded from checking entirely.
type GroupOrder struct {
	groups []MemberGroup
	ranks  map[MemberGroup]int
}

// NewGroupOrder builds a GroupOrder from configured group keys. An empty key
// list yields the builtin DefaultOrder. Unknown and duplicate keys are
// rejected with a *ConfigError.
func NewGroupOrder(keys []string) (GroupOrder, error) {
	groups := DefaultOrder
	if len(keys) > 0 {
		groups = make([]MemberGroup, 0, len(keys))
		for _, key := range keys {
			g, ok := KnownGroup(key)
			if !ok {
				return GroupOrder{}, &ConfigError{Key: key, Reason: "unknown group"}
			}
			groups = append(groups, g)
		}
	}

	ranks := make(map[MemberGroup]int, len(groups))
	for i, g := range groups {
		if _, dup := ranks[g]; dup {
			return GroupOrder{}, &ConfigError{Key: g.String(), Reason: "duplicate group"}
		}
		ranks[g] = i
	}

	return GroupOrder{groups: groups, ranks: ranks}, nil
}

// Groups returns the ordered groups.
func (o GroupOrder) Groups() []MemberGroup {
	groups := make([]MemberGroup, len(o.groups))
	copy(groups, o.groups)
	return groups
}

// Rank returns a group's index in the order.
func (o GroupOrder) Rank(g MemberGroup) (int, bool) {
	rank, ok := o.ranks[g]
	return rank, ok
}

// Contains reports whether the group participates in checking.
func (o GroupOrder) Contains(g MemberGroup) bool {
	_, ok := o.ranks[g]
	return ok
}
