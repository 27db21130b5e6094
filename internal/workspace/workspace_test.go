package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	return NewManager(
		filepath.Join(dir, "template.md"),
		filepath.Join(dir, "new_report.md"),
		filepath.Join(dir, "reports"),
	), dir
}

func TestEnsure_MissingTemplate(t *testing.T) {
	mgr, dir := newTestManager(t)

	notices, err := mgr.Ensure()
	require.Error(t, err)
	assert.Empty(t, notices)
	assert.ErrorIs(t, err, ErrTemplateMissing)

	classified, ok := errors.AsClassified(err)
	require.True(t, ok)
	hint, _ := classified.Context().GetString(errors.HintKey)
	assert.Equal(t, "there is no template.md.\nplease make template.md or git pull again.", hint)

	_, statErr := os.Stat(filepath.Join(dir, "reports"))
	assert.True(t, os.IsNotExist(statErr), "nothing is created without a template")
}

func TestEnsure_SeedsWorkingReportAndReportsDir(t *testing.T) {
	mgr, dir := newTestManager(t)
	require.NoError(t, os.WriteFile(mgr.TemplatePath(), []byte("# Todo\n"), 0o600))

	notices, err := mgr.Ensure()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"make new_report.md by copying template.md",
		"make reports/ directory to store daily reports.",
	}, notices)

	working, err := os.ReadFile(filepath.Join(dir, "new_report.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Todo\n", string(working))

	info, err := os.Stat(filepath.Join(dir, "reports"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	notices, err = mgr.Ensure()
	require.NoError(t, err)
	assert.Empty(t, notices, "second run has nothing to do")
}

func TestEnsure_KeepsExistingWorkingReport(t *testing.T) {
	mgr, _ := newTestManager(t)
	require.NoError(t, os.WriteFile(mgr.TemplatePath(), []byte("# Todo\n"), 0o600))
	require.NoError(t, os.WriteFile(mgr.WorkingPath(), []byte("# Todo\n- mine\n"), 0o600))

	_, err := mgr.Ensure()
	require.NoError(t, err)

	working, _ := os.ReadFile(mgr.WorkingPath())
	assert.Equal(t, "# Todo\n- mine\n", string(working))
}

func TestSeedTemplate(t *testing.T) {
	mgr, _ := newTestManager(t)

	wrote, err := mgr.SeedTemplate()
	require.NoError(t, err)
	assert.True(t, wrote)

	content, _ := os.ReadFile(mgr.TemplatePath())
	assert.Equal(t, StarterTemplate, string(content))

	require.NoError(t, os.WriteFile(mgr.TemplatePath(), []byte("custom"), 0o600))
	wrote, err = mgr.SeedTemplate()
	require.NoError(t, err)
	assert.False(t, wrote)
	content, _ = os.ReadFile(mgr.TemplatePath())
	assert.Equal(t, "custom", string(content))
}
