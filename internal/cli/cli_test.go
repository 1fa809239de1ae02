package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmldom/internal/logging"
	"github.com/yaklabco/htmldom/pkg/dom"
	"github.com/yaklabco/htmldom/pkg/tag"
)

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{Version: "dev"})

	want := []string{"tree", "events", "stats", "version"}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestBuildTree(t *testing.T) {
	path := writeDocument(t, `<html><body><p>Hi</p></body></html>`)

	tree, err := buildTree(path)

	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())
}

func TestBuildTree_MissingFile(t *testing.T) {
	_, err := buildTree(filepath.Join(t.TempDir(), "nope.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildTree_UnknownTag(t *testing.T) {
	path := writeDocument(t, `<html><bogus>`)

	_, err := buildTree(path)

	assert.ErrorContains(t, err, "unknown tag")
}

func TestPruneTags(t *testing.T) {
	path := writeDocument(t,
		`<html><body><script>var x = 1</script><p>keep</p></body></html>`)
	tree, err := buildTree(path)
	require.NoError(t, err)

	err = pruneTags(tree, []string{"script"}, logging.Default())

	require.NoError(t, err)
	assert.Equal(t, `<html><body><p>keep</p></body></html>`, tree.HTML())
}

func TestPruneTags_UnknownName(t *testing.T) {
	path := writeDocument(t, `<html></html>`)
	tree, err := buildTree(path)
	require.NoError(t, err)

	err = pruneTags(tree, []string{"nonsense"}, logging.Default())

	assert.ErrorContains(t, err, "--drop")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "htmldom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunTree_ConfigLogLevel(t *testing.T) {
	doc := writeDocument(t, `<html></html>`)
	cfgPath := writeConfig(t, "log_level: debug\n")
	t.Cleanup(func() { logging.SetLevel("info") })

	opts := &rootOptions{configPath: cfgPath, color: "never"}
	require.NoError(t, runTree(opts, &treeFlags{}, doc))

	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestRunTree_DebugFlagWinsOverConfigLevel(t *testing.T) {
	doc := writeDocument(t, `<html></html>`)
	cfgPath := writeConfig(t, "log_level: error\n")
	logging.SetLevel("debug")
	t.Cleanup(func() { logging.SetLevel("info") })

	opts := &rootOptions{debug: true, configPath: cfgPath, color: "never"}
	require.NoError(t, runTree(opts, &treeFlags{}, doc))

	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}

func TestRunStats_ConfigLogLevel(t *testing.T) {
	doc := writeDocument(t, `<html><p>x</p></html>`)
	cfgPath := writeConfig(t, "log_level: warn\n")
	t.Cleanup(func() { logging.SetLevel("info") })

	opts := &rootOptions{configPath: cfgPath, color: "never"}
	require.NoError(t, runStats(opts, doc))

	assert.Equal(t, log.WarnLevel, logging.Default().GetLevel())
}

func TestRunEvents_MissingFile(t *testing.T) {
	err := runEvents(filepath.Join(t.TempDir(), "nope.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrinter_EchoesEvents(t *testing.T) {
	var b strings.Builder
	p := &printer{w: &b}

	p.HandleStartTag(tag.P, []dom.Attribute{{Name: "class", Value: "x"}})
	p.HandleData([]byte("hi"))
	p.HandleEndTag(tag.P)

	assert.Equal(t, `<p class="x">hi</p>`, b.String())
}
