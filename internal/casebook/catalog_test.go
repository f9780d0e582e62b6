package casebook

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BundledCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, 4, c.Count())
	require.NoError(t, c.Validate())
}

func TestDefault_CorrectVerdicts(t *testing.T) {
	want := map[int]VerdictType{1: Mixed, 2: Guilty, 3: Guilty, 4: Guilty}
	for id, v := range want {
		c, ok := Default().ByID(id)
		require.True(t, ok, "case %d missing", id)
		assert.Equal(t, v, c.CorrectVerdict, "case %d", id)
	}
}

func TestDefault_OrderAndIndex(t *testing.T) {
	cat := Default()
	for i := 0; i < cat.Count(); i++ {
		c, ok := cat.At(i)
		require.True(t, ok)
		assert.Equal(t, i+1, c.ID)
		assert.Equal(t, i, cat.IndexOf(c.ID))
	}
	assert.Equal(t, -1, cat.IndexOf(99))
}

func TestAt_OutOfRange(t *testing.T) {
	cat := Default()
	_, ok := cat.At(-1)
	assert.False(t, ok)
	_, ok = cat.At(cat.Count())
	assert.False(t, ok)
}

func TestAt_ReturnsCopy(t *testing.T) {
	cat := Default()
	c, _ := cat.At(0)
	c.PolicyLevers[0].Text = "mutated"
	c.Title = "mutated"

	again, _ := cat.At(0)
	assert.NotEqual(t, "mutated", again.PolicyLevers[0].Text)
	assert.NotEqual(t, "mutated", again.Title)
}

func TestLocalTag(t *testing.T) {
	c, ok := Default().ByID(4)
	require.True(t, ok)
	assert.True(t, c.IsLocal)
	assert.Equal(t, "🏙️ LA / Local Legends", c.LocalTag)

	c, _ = Default().ByID(1)
	assert.False(t, c.IsLocal)
}

func TestSources_FlattenedInCatalogOrder(t *testing.T) {
	srcs := Default().Sources()
	require.Len(t, srcs, 7)
	assert.Equal(t, "Justia: Moore v. Regents", srcs[0].Label)
	assert.Equal(t, "Helmer Friedman: CA Employment Law Notes", srcs[6].Label)
}

func TestLabelFor_Fallback(t *testing.T) {
	c, _ := Default().ByID(1)
	assert.Equal(t, "Allowed only with full disclosure + consent", c.LabelFor(Mixed))
	assert.Equal(t, "Allowed only with full disclosure + consent", c.CorrectLabel())
	assert.Equal(t, "bogus", c.LabelFor(VerdictType("bogus")))
	assert.Equal(t, "", c.LabelFor(""))
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"empty list", `[]`},
		{"unknown verdict", `[{"id":1,"title":"t","subtitle":"","story":"","evidence":[],
			"verdictOptions":[{"type":"guilty","label":"a","emoji":""},{"type":"not_guilty","label":"b","emoji":""},{"type":"maybe","label":"c","emoji":""}],
			"correctVerdict":"guilty","policyLevers":[],"whatHappened":"","negativeImpact":[],"whatYouCanDo":"","sources":[]}]`},
		{"zero id", `[{"id":0,"title":"t","subtitle":"","story":"","evidence":[],
			"verdictOptions":[{"type":"guilty","label":"a","emoji":""},{"type":"not_guilty","label":"b","emoji":""},{"type":"mixed","label":"c","emoji":""}],
			"correctVerdict":"guilty","policyLevers":[],"whatHappened":"","negativeImpact":[],"whatYouCanDo":"","sources":[]}]`},
		{"bad url", `[{"id":1,"title":"t","subtitle":"","story":"","evidence":[],
			"verdictOptions":[{"type":"guilty","label":"a","emoji":""},{"type":"not_guilty","label":"b","emoji":""},{"type":"mixed","label":"c","emoji":""}],
			"correctVerdict":"guilty","policyLevers":[],"whatHappened":"","negativeImpact":[],"whatYouCanDo":"","sources":[{"label":"x","url":"ftp://x"}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.json))
			require.Error(t, err)
		})
	}
}

func TestLoad_SemanticDuplicateOption(t *testing.T) {
	raw := `[{"id":1,"title":"t","subtitle":"","story":"","evidence":[],
		"verdictOptions":[{"type":"guilty","label":"a","emoji":""},{"type":"guilty","label":"b","emoji":""},{"type":"mixed","label":"c","emoji":""}],
		"correctVerdict":"guilty","policyLevers":[],"whatHappened":"","negativeImpact":[],"whatYouCanDo":"","sources":[]}]`
	_, err := Load([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
	joined := strings.Join(verr.Problems, "\n")
	assert.Contains(t, joined, `appears 2 times`)
	assert.Contains(t, joined, `missing verdict option "not_guilty"`)
}

func TestValidateCases_DetectsDuplicateID(t *testing.T) {
	base, _ := Default().At(0)
	err := validateCases([]Case{base, base})
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateCases_LocalWithoutTag(t *testing.T) {
	c, _ := Default().At(0)
	c.IsLocal = true
	c.LocalTag = ""
	err := validateCases([]Case{c})
	if err == nil || !strings.Contains(err.Error(), "local tag") {
		t.Fatalf("expected local tag error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")
	require.NoError(t, os.WriteFile(path, bundledCases, 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Count())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
