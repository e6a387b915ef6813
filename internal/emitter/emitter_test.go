package emitter

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pwerrors "github.com/chazuruo/pwconf/internal/errors"
	"github.com/chazuruo/pwconf/internal/testutil"
)

func TestBuildConfigText_Contents(t *testing.T) {
	text := BuildConfigText()

	for _, want := range []string{
		`require('@playwright/test')`,
		`fullyParallel: true`,
		`retries: process.env.CI ? 2 : 0`,
		`workers: process.env.CI ? 1 : undefined`,
		`baseURL: 'http://localhost:8009'`,
		`trace: 'on-first-retry'`,
		`{ name: 'setup', testMatch: /.*\.setup\.js/ }`,
		`name: 'chromium'`,
		`...devices['Desktop Chrome']`,
		`storageState: 'playwright/.auth/user.json'`,
		`dependencies: ['setup']`,
	} {
		assert.Contains(t, text, want)
	}
	assert.True(t, strings.HasSuffix(text, "});\n"), "config should end with a newline")
}

func TestBuildConfigText_Deterministic(t *testing.T) {
	assert.Equal(t, BuildConfigText(), BuildConfigText())
}

func TestResolveOutputPath_Executable(t *testing.T) {
	exeDir, err := executableDir()
	require.NoError(t, err)

	e := New()
	path, err := e.ResolveOutputPath()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, filepath.Join(exeDir, FileName), path)

	// The working directory must not influence the result.
	chdir(t, t.TempDir())
	again, err := e.ResolveOutputPath()
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestResolveOutputPath_WithDir(t *testing.T) {
	dir := t.TempDir()

	path, err := New(WithDir(dir)).ResolveOutputPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)
}

func TestResolveOutputPath_RelativeDirIsMadeAbsolute(t *testing.T) {
	wd := t.TempDir()
	chdir(t, wd)

	path, err := New(WithDir("sub")).ResolveOutputPath()
	require.NoError(t, err)

	want, err := filepath.Abs(filepath.Join("sub", FileName))
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestResolveOutputPath_ResolverError(t *testing.T) {
	e := New()
	e.dir = func() (string, error) { return "", errors.New("no executable") }

	_, err := e.ResolveOutputPath()
	require.Error(t, err)
	assert.True(t, pwerrors.IsIO(err))

	ee, ok := pwerrors.AsEmitError(err)
	require.True(t, ok)
	assert.Equal(t, "resolve", ee.Op)
}

func TestWriteConfig_CreatesFile(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), FileName)
	text := BuildConfigText()

	n, err := New().WriteConfig(path, text)
	require.NoError(t, err)
	assert.Equal(t, len(text), n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestWriteConfig_TruncatesLongerFile(t *testing.T) {
	dir := testutil.TempDir(t)
	old := strings.Repeat("stale content that must disappear\n", 200)
	path := testutil.WriteFile(t, dir, FileName, old)
	require.Greater(t, len(old), len(BuildConfigText()))

	n, err := New().WriteConfig(path, BuildConfigText())
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, BuildConfigText(), string(got))
	assert.Len(t, got, n)
	assert.NotContains(t, string(got), "stale content")
}

func TestWriteConfig_MissingDirectory(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "missing", FileName)

	n, err := New().WriteConfig(path, BuildConfigText())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, pwerrors.IsIO(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	ee, ok := pwerrors.AsEmitError(err)
	require.True(t, ok)
	assert.Equal(t, "write", ee.Op)
	assert.Equal(t, path, ee.Path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteConfig_ReadOnlyDirectory(t *testing.T) {
	dir := testutil.ReadOnlyDir(t)
	path := filepath.Join(dir, FileName)

	_, err := New().WriteConfig(path, BuildConfigText())
	require.Error(t, err)
	assert.True(t, pwerrors.IsIO(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created")
}

func TestWriteConfig_TargetIsDirectory(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.Mkdir(path, 0755))

	n, err := New().WriteConfig(path, BuildConfigText())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, pwerrors.IsIO(err))

	ee, ok := pwerrors.AsEmitError(err)
	require.True(t, ok)
	assert.Equal(t, "write", ee.Op)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir(), "target should be left untouched")
}

func TestEmit_TargetIsDirectory(t *testing.T) {
	dir := testutil.TempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0755))

	_, err := New(WithDir(dir)).Emit()
	require.Error(t, err)
	assert.True(t, pwerrors.IsIO(err))
}

func TestReport_Plain(t *testing.T) {
	var buf bytes.Buffer

	err := New(WithColor(false)).Report(&buf, 42, "/srv/app/playwright.config.js")
	require.NoError(t, err)
	assert.Equal(t, "✓ Wrote 42 bytes to /srv/app/playwright.config.js\n", buf.String())
}

func TestReport_ColorOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	err := New().Report(&buf, 7, "/x/playwright.config.js")
	require.NoError(t, err)
	assert.Equal(t, "✓ Wrote 7 bytes to /x/playwright.config.js\n", buf.String())
}

func TestEmit_FreshDirectory(t *testing.T) {
	dir := testutil.TempDir(t)

	res, err := New(WithDir(dir)).Emit()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, FileName), res.Path)
	assert.Equal(t, len(BuildConfigText()), res.Bytes)

	got, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, BuildConfigText(), string(got))
	assert.Len(t, got, res.Bytes)
}

func TestEmit_OverwritesExisting(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, FileName, "module.exports = {};\n")

	res, err := New(WithDir(dir)).Emit()
	require.NoError(t, err)

	got, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, BuildConfigText(), string(got))
	assert.NotContains(t, string(got), "module.exports = {};")
}

func TestEmit_Idempotent(t *testing.T) {
	dir := testutil.TempDir(t)
	e := New(WithDir(dir))

	first, err := e.Emit()
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	second, err := e.Emit()
	require.NoError(t, err)
	secondBytes, err := os.ReadFile(second.Path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestEmit_MissingDirectory(t *testing.T) {
	dir := filepath.Join(testutil.TempDir(t), "gone")

	res, err := New(WithDir(dir)).Emit()
	require.Error(t, err)
	assert.True(t, pwerrors.IsIO(err))
	assert.Equal(t, filepath.Join(dir, FileName), res.Path)
	assert.Zero(t, res.Bytes)
}

func TestEmit_LogsAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	dir := testutil.TempDir(t)

	_, err := New(WithDir(dir), WithLogger(logger)).Emit()
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, `"message":"resolved output path"`)
	assert.Contains(t, out, `"message":"wrote config"`)
	assert.Contains(t, out, `"bytes":`)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
