// Package report turns member-order verdicts into findings and renders them
// as text or JSON. The two diagnostic message templates live here; the lint
// core only supplies the structured context they need.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/c360studio/memberlint/lint"
)

// RuleID identifies which check produced a finding.
type RuleID string

const (
	RuleOrdering     RuleID = "member-ordering"
	RuleAlphabetical RuleID = "member-alphabetical"
)

// Finding is one diagnostic at a source location.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Class   string `json:"class"`
	Member  string `json:"member"`
	Rule    RuleID `json:"rule"`
	Message string `json:"message"`
}

// FindingsFromVerdict converts one verdict into zero, one, or two findings.
// Rank and alphabetical violations are independent: a member may produce
// both.
func FindingsFromVerdict(file, class string, v lint.MemberOrderVerdict) []Finding {
	var findings []Finding

	base := Finding{
		File:   file,
		Line:   v.Member.Line,
		Column: v.Member.Column,
		Class:  class,
		Member: memberLabel(v.Member),
	}

	if v.IsWrong {
		f := base
		f.Rule = RuleOrdering
		f.Message = fmt.Sprintf("%s should be before %s",
			v.Group.DisplayName(), v.PreviousGroup.DisplayName())
		findings = append(findings, f)
	}

	if v.IsAlphabeticallyWrong {
		f := base
		f.Rule = RuleAlphabetical
		f.Message = fmt.Sprintf("%s should be alphabetically before %s",
			alphaLabel(v.Name), alphaLabel(v.PreviousName))
		findings = append(findings, f)
	}

	return findings
}

// memberLabel names a member in a finding. The unnamed constructor has an
// empty descriptor name.
func memberLabel(m lint.MemberDescriptor) string {
	if m.Kind == lint.KindConstructor && m.Name == "" {
		return "constructor"
	}
	return m.Name
}

// alphaLabel quotes empty constructor names so the alphabetical message stays
// readable.
func alphaLabel(name string) string {
	if name == "" {
		return `""`
	}
	return name
}

// Report aggregates the findings of one run.
type Report struct {
	RunID          string    `json:"run_id"`
	Findings       []Finding `json:"findings"`
	FilesChecked   int       `json:"files_checked"`
	ClassesChecked int       `json:"classes_checked"`
}

// New creates an empty report with a fresh run identifier.
func New() *Report {
	return &Report{
		RunID:    uuid.New().String(),
		Findings: make([]Finding, 0),
	}
}

// Add appends findings to the report.
func (r *Report) Add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

// HasFindings reports whether any violation was found.
func (r *Report) HasFindings() bool {
	return len(r.Findings) > 0
}

// WriteText renders the report as one line per finding plus a summary.
func (r *Report) WriteText(w io.Writer) error {
	for _, f := range r.Findings {
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s]\n",
			f.File, f.Line, f.Column, f.Message, f.Rule); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d problem(s) in %d file(s), %d class(es) checked\n",
		len(r.Findings), r.FilesChecked, r.ClassesChecked)
	return err
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
