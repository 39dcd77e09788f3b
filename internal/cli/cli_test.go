package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkedProject lays out an app whose node_modules/shared is a symlink to a
// working copy next to it. It returns the app root and the working copy.
func linkedProject(t *testing.T) (string, string) {
	t.Helper()

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	root := filepath.Join(base, "app")
	shared := filepath.Join(base, "shared")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(shared, "node_modules", "react"), 0755))

	writeFile(t, filepath.Join(root, "package.json"), `{"name":"app","dependencies":{"shared":"*"}}`)
	writeFile(t, filepath.Join(shared, "package.json"), `{"name":"shared"}`)
	require.NoError(t, os.Symlink(shared, filepath.Join(root, "node_modules", "shared")))

	return root, shared
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// run executes the root command and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestApplyJSON(t *testing.T) {
	root, shared := linkedProject(t)

	stdout, stderr, err := run(t, "apply", "--root", root, "--blacklist", "react")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.Equal(t, []interface{}{shared}, result["watchFolders"])
	resolver, ok := result["resolver"].(map[string]interface{})
	require.True(t, ok, "resolver section missing: %s", stdout)
	assert.Contains(t, resolver["blacklistRE"], "/node_modules/(react)")

	assert.Contains(t, stderr, "you have symlinked dependencies in node_modules!")
	assert.Contains(t, stderr, shared)
}

func TestApplySilent(t *testing.T) {
	root, _ := linkedProject(t)

	_, stderr, err := run(t, "apply", "--root", root, "--silent")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "symlinked dependencies")
}

func TestApplyMergesExistingConfig(t *testing.T) {
	root, shared := linkedProject(t)
	writeFile(t, filepath.Join(root, "metro.json"),
		`{"watchFolders":["/elsewhere"],"transformer":{"minify":true}}`)

	extra := filepath.Join(filepath.Dir(root), "extra")
	require.NoError(t, os.Mkdir(extra, 0755))

	stdout, _, err := run(t, "apply", "--root", root, "--silent", "--config", "metro.json", "--watch", "../extra")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, []interface{}{shared, extra, "/elsewhere"}, result["watchFolders"])
	assert.Equal(t, map[string]interface{}{"minify": true}, result["transformer"])
	assert.NotContains(t, result, "symbolicator")
}

func TestApplyRefusesExistingBlacklist(t *testing.T) {
	root, _ := linkedProject(t)
	writeFile(t, filepath.Join(root, "metro.json"), `{"resolver":{"blacklistRE":"foo"}}`)

	_, _, err := run(t, "apply", "--root", root, "--silent", "--config", "metro.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ResolveDevPaths, WatchFolders and ResolverConfig")
}

func TestApplyWithoutLinksKeepsConfig(t *testing.T) {
	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeFile(t, filepath.Join(base, "package.json"), `{"name":"plain"}`)
	writeFile(t, filepath.Join(base, "metro.json"), `{"watchFolders":["/elsewhere"]}`)

	stdout, stderr, err := run(t, "apply", "--root", base, "--config", "metro.json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, map[string]interface{}{"watchFolders": []interface{}{"/elsewhere"}}, result)
	assert.Empty(t, stderr)
}

func TestApplyCommonJSToFile(t *testing.T) {
	root, _ := linkedProject(t)

	stdout, stderr, err := run(t, "apply", "--root", root, "--silent",
		"--blacklist", "react", "--format", "js", "--out", "metro.linked.js")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	out := filepath.Join(root, "metro.linked.js")
	assert.Contains(t, stderr, "Wrote "+out+" (js)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "// Generated by metrolink."))
	assert.Contains(t, string(data), "new RegExp(")
}

func TestApplyUnknownFormat(t *testing.T) {
	root, _ := linkedProject(t)

	_, _, err := run(t, "apply", "--root", root, "--silent", "--format", "xml")
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	root, shared := linkedProject(t)

	stdout, _, err := run(t, "paths", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "LINK")
	assert.Contains(t, stdout, filepath.Join("node_modules", "shared"))
	assert.Contains(t, stdout, shared)
}

func TestPathsWithoutLinks(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "package.json"), `{"name":"plain"}`)

	stdout, _, err := run(t, "paths", "--root", base)
	require.NoError(t, err)
	assert.Equal(t, "No linked dependencies found.\n", stdout)
}

func TestPattern(t *testing.T) {
	root, shared := linkedProject(t)

	stdout, _, err := run(t, "pattern", "--root", root, "--blacklist", "react")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, ")$\n"), stdout)
	assert.Contains(t, stdout, "/node_modules/(react)")
	assert.Contains(t, stdout, filepath.Base(shared))
}

func TestPatternNothingToExclude(t *testing.T) {
	root, _ := linkedProject(t)

	stdout, stderr, err := run(t, "pattern", "--root", root)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "Nothing to exclude.\n", stderr)
}

func TestPatternFromProjectSettings(t *testing.T) {
	root, _ := linkedProject(t)
	writeFile(t, filepath.Join(root, "metrolink.toml"), "[linked]\nblacklist_modules = [\"react\"]\n")

	stdout, _, err := run(t, "pattern", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "/node_modules/(react)")
}

func TestWatchFolders(t *testing.T) {
	root, shared := linkedProject(t)

	extra := filepath.Join(filepath.Dir(root), "extra")
	require.NoError(t, os.Mkdir(extra, 0755))

	stdout, _, err := run(t, "watch-folders", "--root", root, "--watch", extra)
	require.NoError(t, err)
	assert.Equal(t, shared+"\n"+extra+"\n", stdout)
}

func TestCheck(t *testing.T) {
	root, shared := linkedProject(t)
	nested := filepath.Join(shared, "node_modules", "react", "index.js")

	stdout, _, err := run(t, "check", "--root", root, "--blacklist", "react", nested, "src/App.js")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "excluded "+nested, lines[0])
	assert.Equal(t, "included "+filepath.Join(root, "src", "App.js"), lines[1])
}

func TestCheckVerboseListsExcludedDirectories(t *testing.T) {
	root, shared := linkedProject(t)
	excluded := filepath.Join(shared, "node_modules", "react")

	_, stderr, err := run(t, "check", "-v", "--root", root, "--blacklist", "react", "src/App.js")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Excluded directories:\n  "+excluded+"\n")

	_, stderr, err = run(t, "check", "--root", root, "--blacklist", "react", "src/App.js")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Excluded directories:")
}

func TestCheckRequiresPath(t *testing.T) {
	root, _ := linkedProject(t)

	_, _, err := run(t, "check", "--root", root)
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := run(t, "init", "--root", dir)
	require.NoError(t, err)
	path := filepath.Join(dir, "metrolink.toml")
	assert.Equal(t, "Wrote "+path+"\n", stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[linked]")

	_, _, err = run(t, "init", "--root", dir)
	assert.Error(t, err, "existing file must not be overwritten")

	_, _, err = run(t, "init", "--root", dir, "--force")
	assert.NoError(t, err)
}

func TestExplain(t *testing.T) {
	stdout, _, err := run(t, "explain", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Linked dependencies and Metro")
	assert.Contains(t, stdout, "yarn link")
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "metrolink version "))
	assert.Contains(t, stdout, "commit:")
}

func TestCompletion(t *testing.T) {
	stdout, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "metrolink")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestMan(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man")

	_, _, err := run(t, "man", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "metrolink.1"))
	assert.FileExists(t, filepath.Join(dir, "metrolink-apply.1"))
}

func TestNoCommand(t *testing.T) {
	_, _, err := run(t)
	require.Error(t, err)
	assert.Equal(t, "no command specified", err.Error())
}

func TestUnknownStrategy(t *testing.T) {
	root, _ := linkedProject(t)

	_, _, err := run(t, "paths", "--root", root, "--strategy", "guess")
	assert.Error(t, err)
}
