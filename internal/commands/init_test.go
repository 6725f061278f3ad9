package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payapp-dev/payapp/internal/header"
	"github.com/payapp-dev/payapp/internal/items"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "payapp-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "payapp")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/payapp")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runPayapp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	expectedDirs := []string{
		"data",
		"inbox",
		"exports",
		"logs",
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "payapp.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Pump Station 4")
	assert.Contains(t, contents, "default_rate_percent: 5")
}

func TestInit_SeedFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	hdr, err := os.ReadFile(filepath.Join(dir, "data", "header.csv"))
	require.NoError(t, err)
	assert.Equal(t, header.Header+"\n", string(hdr), "header seed is header-only")

	seed, err := os.ReadFile(filepath.Join(dir, "data", "items-seed.csv"))
	require.NoError(t, err)
	assert.Equal(t, items.Header+"\n", string(seed), "items seed is header-only")
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init:")
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exports/")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestSummary_BlocksWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	// Freshly initialized workspaces have no header data row yet.
	out, err := runPayapp(t, "summary", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "header data is empty")
}

func TestParse_EmptyInbox(t *testing.T) {
	dir := t.TempDir()
	_, err := runPayapp(t, "init", dir, "--name", "Pump Station 4")
	require.NoError(t, err)

	out, err := runPayapp(t, "parse", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "inbox is empty")
}

func TestCompute_FromItemsCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "items.csv")
	require.NoError(t, os.WriteFile(src, []byte(
		"description,unit,unit_price,bid_qty,this_period_qty,to_date_qty,notes\n"+
			"Mobilization,LS,100000,0,0.10,0.45,\n"), 0o644))

	out, err := runPayapp(t, "compute", src, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "pct_complete")
	assert.Contains(t, out, "45.00")
}
