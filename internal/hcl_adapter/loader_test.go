package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pbxpatch/internal/pbx"
)

func writePlan(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullPlan(t *testing.T) {
	t.Parallel()

	path := writePlan(t, "plan.hcl", `
patch {
  project = "App.xcodeproj/project.pbxproj"
  remove  = ["OldFile.swift", "DebugView.swift"]
  anchor  = "AA03 /* AppMain.swift in Sources */"

  on_missing_anchor = "prepend"
  backup            = true

  add "AuthManager.swift" {
    ref   = "E2DB26F22E53A25D00139AA3"
    build = "E2DB26F52E53A25D00139AA3"
  }

  add "ChatView.swift" {}
}
`)

	plan, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "App.xcodeproj/project.pbxproj", plan.ProjectPath)
	assert.Equal(t, []string{"OldFile.swift", "DebugView.swift"}, plan.Stale)
	assert.Equal(t, "AA03 /* AppMain.swift in Sources */", plan.Anchor)
	assert.Equal(t, "prepend", plan.OnMissingAnchor)
	assert.True(t, plan.Backup)

	require.Len(t, plan.Additions, 2)
	assert.Equal(t, pbx.Addition{
		FileName: "AuthManager.swift",
		RefID:    "E2DB26F22E53A25D00139AA3",
		BuildID:  "E2DB26F52E53A25D00139AA3",
	}, plan.Additions[0])
	assert.Equal(t, pbx.Addition{FileName: "ChatView.swift"}, plan.Additions[1])

	require.NoError(t, plan.Validate())
}

func TestLoad_MinimalPlan(t *testing.T) {
	t.Parallel()

	path := writePlan(t, "plan.hcl", `
patch {
  project = "project.pbxproj"
  remove  = ["OldFile.swift"]
}
`)

	plan, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, plan.Additions)
	assert.Empty(t, plan.OnMissingAnchor)
	assert.False(t, plan.Backup)
	assert.Equal(t, pbx.AnchorFail, plan.Policy(), "unset policy defaults to fail")
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(`
patch {
  project = "project.pbxproj"
  remove  = ["OldFile.swift"]
}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	plan, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "project.pbxproj", plan.ProjectPath)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name:      "syntax error",
			content:   `patch { project = `,
			expectErr: "failed to parse",
		},
		{
			name:      "no patch block",
			content:   `# just a comment`,
			expectErr: "no patch block",
		},
		{
			name: "two patch blocks",
			content: `
patch {
  project = "a.pbxproj"
  remove  = ["A.swift"]
}
patch {
  project = "b.pbxproj"
  remove  = ["B.swift"]
}
`,
			expectErr: "exactly one patch block",
		},
		{
			name:      "missing project attribute",
			content:   `patch { remove = ["A.swift"] }`,
			expectErr: "failed to decode",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writePlan(t, "plan.hcl", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
