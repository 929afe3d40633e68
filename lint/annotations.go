package lint

// AnnotationRule maps a recognized annotation name to the group it forces a
// member into, regardless of the member's kind and visibility.
type AnnotationRule struct {
	Name  string
	Group MemberGroup
}

// annotationRules is the fixed priority order for annotation overrides. The
// first rule whose name appears on a member wins and short-circuits the
// kind/visibility classification for that member.
var annotationRules = []AnnotationRule{
	{Name: "Input", Group: GroupInputs},
	{Name: "Output", Group: GroupOutputs},
	{Name: "HostBinding", Group: GroupHostBindings},
	{Name: "HostListener", Group: GroupHostListeners},
	{Name: "ViewChild", Group: GroupViewChildren},
	{Name: "ViewChildren", Group: GroupViewChildren},
	{Name: "ContentChild", Group: GroupContentChildren},
	{Name: "ContentChildren", Group: GroupContentChildren},
}

// AnnotationRules returns a copy of the fixed annotation override rules in
// priority order.
func AnnotationRules() []AnnotationRule {
	rules := make([]AnnotationRule, len(annotationRules))
	copy(rules, annotationRules)
	return rules
}

// groupForAnnotations returns the group forced by the highest-priority rule
// matching any of the member's annotations. Unrecognized annotations are
// ignored rather than reported.
func groupForAnnotations(annotations []string) (MemberGroup, bool) {
	if len(annotations) == 0 {
		return "", false
	}
	for _, rule := range annotationRules {
		for _, name := range annotations {
			if name == rule.Name {
				return rule.Group, true
			}
		}
	}
	return "", false
}
