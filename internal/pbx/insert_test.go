package pbx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertBuildFiles_BeforeAnchor(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{{FileName: "Foo.swift", RefID: "CC0000000000000000000001", BuildID: "CC0000000000000000000002"}}

	report, err := doc.InsertBuildFiles(adds, sampleAnchor, AnchorFail)
	require.NoError(t, err)
	require.True(t, report.AnchorFound)
	require.Len(t, report.Inserted, 1)

	line := BuildFileLine("CC0000000000000000000002", "CC0000000000000000000001", "Foo.swift")
	assert.Contains(t, doc.String(), line)

	// The new line sits immediately before the anchor.
	idx := strings.Index(doc.String(), line)
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, strings.HasPrefix(doc.String()[idx+len(line):], sampleAnchor))

	// Stripping the inserted line back out restores the original document.
	stripped := strings.Replace(doc.String(), line, "", 1)
	if diff := cmp.Diff(sampleProject, stripped); diff != "" {
		t.Errorf("document changed beyond the inserted line (-want +got):\n%s", diff)
	}
}

func TestInsertBuildFiles_SkipsExistingFile(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{{FileName: "AppMain.swift"}}

	report, err := doc.InsertBuildFiles(adds, sampleAnchor, AnchorFail)
	require.NoError(t, err)

	assert.Empty(t, report.Inserted)
	assert.Equal(t, []string{"AppMain.swift"}, report.Skipped)
	assert.Equal(t, sampleProject, doc.String())
}

func TestInsertBuildFiles_Rerun_NoDuplicates(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{{FileName: "Foo.swift", RefID: "CC0000000000000000000001", BuildID: "CC0000000000000000000002"}}

	_, err := doc.InsertBuildFiles(adds, sampleAnchor, AnchorFail)
	require.NoError(t, err)
	once := doc.String()

	report, err := doc.InsertBuildFiles(adds, sampleAnchor, AnchorFail)
	require.NoError(t, err)

	assert.Equal(t, once, doc.String())
	assert.Equal(t, []string{"Foo.swift"}, report.Skipped)
	assert.Equal(t, 1, strings.Count(doc.String(), "Foo.swift in Sources */ = {"))
}

func TestInsertBuildFiles_MissingAnchorFails(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{{FileName: "Foo.swift"}}

	_, err := doc.InsertBuildFiles(adds, "no such anchor anywhere", AnchorFail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anchor")
	assert.Equal(t, sampleProject, doc.String(), "a failed insertion must not touch the document")
}

func TestInsertBuildFiles_MissingAnchorPrepends(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{{FileName: "Foo.swift", RefID: "CC0000000000000000000001", BuildID: "CC0000000000000000000002"}}

	report, err := doc.InsertBuildFiles(adds, "no such anchor anywhere", AnchorPrepend)
	require.NoError(t, err)
	assert.False(t, report.AnchorFound)

	line := BuildFileLine("CC0000000000000000000002", "CC0000000000000000000001", "Foo.swift")
	assert.True(t, strings.HasPrefix(doc.String(), line), "fallback inserts at position 0")
}

func TestInsertBuildFiles_GeneratesMissingIDs(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	report, err := doc.InsertBuildFiles([]Addition{{FileName: "Foo.swift"}}, sampleAnchor, AnchorFail)
	require.NoError(t, err)
	require.Len(t, report.Inserted, 1)

	got := report.Inserted[0]
	assert.True(t, IsObjectID(got.RefID), "generated ref ID %q", got.RefID)
	assert.True(t, IsObjectID(got.BuildID), "generated build ID %q", got.BuildID)
	assert.NotEqual(t, got.RefID, got.BuildID)
}

func TestInsertBuildFiles_MultipleAdditionsKeepOrder(t *testing.T) {
	t.Parallel()

	doc := NewDocument(sampleProject)
	adds := []Addition{
		{FileName: "Alpha.swift"},
		{FileName: "Beta.swift"},
	}

	_, err := doc.InsertBuildFiles(adds, sampleAnchor, AnchorFail)
	require.NoError(t, err)

	alpha := strings.Index(doc.String(), "Alpha.swift in Sources")
	beta := strings.Index(doc.String(), "Beta.swift in Sources")
	anchor := strings.Index(doc.String(), sampleAnchor)
	require.True(t, alpha >= 0 && beta >= 0 && anchor >= 0)
	assert.Less(t, alpha, beta)
	assert.Less(t, beta, anchor)
}

func TestParseMissingAnchorPolicy(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input     string
		expectErr bool
		expected  MissingAnchorPolicy
	}{
		{input: "fail", expected: AnchorFail},
		{input: "prepend", expected: AnchorPrepend},
		{input: "", expectErr: true},
		{input: "explode", expectErr: true},
	}

	for _, tc := range testCases {
		policy, err := ParseMissingAnchorPolicy(tc.input)
		if tc.expectErr {
			assert.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.expected, policy)
	}
}
