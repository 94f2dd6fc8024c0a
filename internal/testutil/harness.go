// Package testutil provides the shared harness for integration tests: it
// materializes a plan and a project file in a temporary directory, runs
// the application against them, and captures everything the run produced.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pbxpatch/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is everything the run wrote: logs and the final summary.
	Output string
	// Err is the run error, including recovered startup panics.
	Err error
	// Dir is the temporary root all relative paths resolved against.
	Dir string
	// App is the constructed application, nil when startup panicked.
	App *app.App
}

// ReadFile returns the current content of a file under the harness root.
func (r *HarnessResult) ReadFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, rel))
	require.NoError(t, err)
	return string(data)
}

// FileExists reports whether a file exists under the harness root.
func (r *HarnessResult) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(r.Dir, rel))
	return err == nil
}

// RunPatchTest writes the given files into a temporary directory, then
// constructs and runs the application with the provided configuration.
// Relative PlanPath and ProjectPath values are resolved against the
// temporary root; log level and format default to debug/text.
func RunPatchTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if cfg.PlanPath != "" && !filepath.IsAbs(cfg.PlanPath) {
		cfg.PlanPath = filepath.Join(tmpDir, cfg.PlanPath)
	}
	if cfg.ProjectPath != "" && !filepath.IsAbs(cfg.ProjectPath) {
		cfg.ProjectPath = filepath.Join(tmpDir, cfg.ProjectPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	buffer := &SafeBuffer{}
	result := &HarnessResult{Dir: tmpDir}

	var patchApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		patchApp = app.NewApp(buffer, appConfig, app.LoaderFor(appConfig.PlanPath))
	}()

	if panicErr != nil {
		result.Output = buffer.String()
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		return result
	}

	result.App = patchApp
	result.Err = patchApp.Run(context.Background())
	result.Output = buffer.String()
	return result
}
