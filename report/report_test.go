package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/memberlint/lint"
)

func TestFindingsFromVerdict_OrderingMessage(t *testing.T) {
	v := lint.MemberOrderVerdict{
		Member: lint.MemberDescriptor{
			Kind: lint.KindField, Name: "y",
			Visibility: lint.VisibilityPublic,
			Line:       4, Column: 5,
		},
		Group:         lint.GroupPublicFields,
		IsWrong:       true,
		PreviousGroup: lint.GroupPrivateMethods,
		Name:          "y",
		PreviousName:  "x",
	}

	findings := FindingsFromVerdict("src/app.ts", "App", v)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, RuleOrdering, f.Rule)
	assert.Equal(t, "public fields should be before private methods", f.Message)
	assert.Equal(t, "src/app.ts", f.File)
	assert.Equal(t, 4, f.Line)
	assert.Equal(t, 5, f.Column)
	assert.Equal(t, "App", f.Class)
	assert.Equal(t, "y", f.Member)
}

func TestFindingsFromVerdict_AlphabeticalMessage(t *testing.T) {
	v := lint.MemberOrderVerdict{
		Member: lint.MemberDescriptor{
			Kind: lint.KindField, Name: "a",
			Visibility: lint.VisibilityPublic,
			Line:       3, Column: 5,
		},
		Group:                 lint.GroupPublicFields,
		IsAlphabeticallyWrong: true,
		Name:                  "a",
		PreviousName:          "b",
	}

	findings := FindingsFromVerdict("src/app.ts", "App", v)
	require.Len(t, findings, 1)
	assert.Equal(t, RuleAlphabetical, findings[0].Rule)
	assert.Equal(t, "a should be alphabetically before b", findings[0].Message)
}

func TestFindingsFromVerdict_BothFlagsAreIndependent(t *testing.T) {
	v := lint.MemberOrderVerdict{
		Member:                lint.MemberDescriptor{Kind: lint.KindField, Name: "a", Line: 1, Column: 1},
		Group:                 lint.GroupPublicFields,
		IsWrong:               true,
		IsAlphabeticallyWrong: true,
		PreviousGroup:         lint.GroupPublicMethods,
		Name:                  "a",
		PreviousName:          "b",
	}

	findings := FindingsFromVerdict("f.ts", "C", v)
	require.Len(t, findings, 2)
	assert.Equal(t, RuleOrdering, findings[0].Rule)
	assert.Equal(t, RuleAlphabetical, findings[1].Rule)
}

func TestFindingsFromVerdict_CleanVerdict(t *testing.T) {
	v := lint.MemberOrderVerdict{
		Member: lint.MemberDescriptor{Kind: lint.KindField, Name: "a"},
		Group:  lint.GroupPublicFields,
		Name:   "a",
	}

	assert.Empty(t, FindingsFromVerdict("f.ts", "C", v))
}

func TestFindingsFromVerdict_ConstructorLabels(t *testing.T) {
	v := lint.MemberOrderVerdict{
		Member: lint.MemberDescriptor{
			Kind: lint.KindConstructor, Name: "",
			Line: 7, Column: 5,
		},
		Group:                 lint.GroupConstructors,
		IsAlphabeticallyWrong: true,
		Name:                  "",
		PreviousName:          "fromJson",
	}

	findings := FindingsFromVerdict("f.ts", "C", v)
	require.Len(t, findings, 1)
	assert.Equal(t, "constructor", findings[0].Member)
	assert.Equal(t, `"" should be alphabetically before fromJson`, findings[0].Message)
}

func TestReport_WriteText(t *testing.T) {
	rep := New()
	rep.FilesChecked = 2
	rep.ClassesChecked = 3
	rep.Add(Finding{
		File: "src/app.ts", Line: 4, Column: 5,
		Class: "App", Member: "y",
		Rule:    RuleOrdering,
		Message: "public fields should be before private methods",
	})

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "src/app.ts:4:5: public fields should be before private methods [member-ordering]")
	assert.Contains(t, out, "1 problem(s) in 2 file(s), 3 class(es) checked")
}

func TestReport_WriteJSON(t *testing.T) {
	rep := New()
	rep.Add(Finding{File: "f.ts", Line: 1, Column: 1, Rule: RuleAlphabetical, Message: "a should be alphabetically before b"})

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.RunID, decoded.RunID)
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, RuleAlphabetical, decoded.Findings[0].Rule)
}

func TestReport_RunIDsAreUnique(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.False(t, a.HasFindings())
	assert.False(t, strings.Contains(a.RunID, " "))
}
