package error_handling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pbxpatch/internal/app"
	"github.com/vk/pbxpatch/internal/testutil"
)

const noAnchorPlan = `
patch {
  project = "project.pbxproj"
  anchor  = "this anchor exists nowhere"

  add "NewFile.swift" {}
}
`

func TestMissingAnchor_DefaultPolicyFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunPatchTest(t, map[string]string{
		"plan.hcl":        noAnchorPlan,
		"project.pbxproj": testutil.SampleProject,
	}, app.Config{
		PlanPath:    "plan.hcl",
		ProjectPath: "project.pbxproj",
	})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "anchor")

	// The failed run must not touch the file.
	assert.Equal(t, testutil.SampleProject, result.ReadFile(t, "project.pbxproj"))
}

func TestMissingAnchor_PrependPolicyInsertsAtTop(t *testing.T) {
	t.Parallel()

	result := testutil.RunPatchTest(t, map[string]string{
		"plan.hcl":        noAnchorPlan,
		"project.pbxproj": testutil.SampleProject,
	}, app.Config{
		PlanPath:        "plan.hcl",
		ProjectPath:     "project.pbxproj",
		OnMissingAnchor: "prepend",
	})
	require.NoError(t, result.Err)

	patched := result.ReadFile(t, "project.pbxproj")
	require.True(t, strings.HasPrefix(patched, "\t\t"), "fallback inserts at position 0")
	firstLine := patched[:strings.Index(patched, "\n")]
	assert.Contains(t, firstLine, "NewFile.swift in Sources")

	assert.Contains(t, result.Output, "inserted at the top", "the degraded anchor is surfaced as a warning")
}
