package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toc-generator/internal/domain/model"
)

type workspace struct {
	root     string
	source   string
	template string
	output   string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	root := t.TempDir()
	ws := &workspace{
		root:     root,
		source:   filepath.Join(root, "src", "main", "java"),
		template: filepath.Join(root, "template.md"),
		output:   filepath.Join(root, "README.md"),
	}

	ws.write(t, "template.md", "# ShuaTi\n\nOnline judge solutions.\n")
	ws.write(t, "src/main/java/dp/LintCode109.java",
		"package dp;\n// Title: Triangle\n// Link: https://www.lintcode.com/problem/triangle/\n// Difficulty: Medium\n")
	ws.write(t, "src/main/java/tree/LintCode7.java",
		"package tree;\n// Title: Binary Tree Serialization\n// Link: https://www.lintcode.com/problem/binary-tree-serialization/\n// Difficulty: Hard\n")
	ws.write(t, "src/main/java/tree/LintCode66.java",
		"package tree;\n// Title: Binary Tree Preorder Traversal\n// Link: https://www.lintcode.com/problem/binary-tree-preorder-traversal/\n// Difficulty: Easy\n")
	return ws
}

func (w *workspace) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(w.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func (w *workspace) args(sub string, extra ...string) []string {
	args := []string{sub, "--log-level", "error"}
	switch sub {
	case "generate":
		args = append(args, "--source", w.source, "--template", w.template, "--output", w.output)
	case "verify":
		args = append(args, "--output", w.output)
	case "stats":
		args = append(args, "--source", w.source)
	}
	return append(args, extra...)
}

func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestGenerateWritesDocument(t *testing.T) {
	ws := newWorkspace(t)

	_, err := run(t, nil, ws.args("generate")...)
	require.NoError(t, err)

	data, err := os.ReadFile(ws.output)
	require.NoError(t, err)
	doc := string(data)

	assert.True(t, strings.HasPrefix(doc, "# ShuaTi\n\nOnline judge solutions.\n<table>\n"))
	assert.Contains(t, doc, "      <td><b>Total</b></td>\n      <td>3</td>\n      <td>1</td>\n      <td>1</td>\n      <td>1</td>\n")

	i7 := strings.Index(doc, ">LintCode7<")
	i66 := strings.Index(doc, ">LintCode66<")
	i109 := strings.Index(doc, ">LintCode109<")
	assert.True(t, i7 < i66 && i66 < i109, "listing sorted by number")
	assert.Contains(t, doc, "/tree/LintCode7.java\">LintCode7</a>")
}

func TestGenerateIsIdempotent(t *testing.T) {
	ws := newWorkspace(t)

	_, err := run(t, nil, ws.args("generate")...)
	require.NoError(t, err)
	first, err := os.ReadFile(ws.output)
	require.NoError(t, err)

	_, err = run(t, nil, ws.args("generate")...)
	require.NoError(t, err)
	second, err := os.ReadFile(ws.output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateWithPreview(t *testing.T) {
	ws := newWorkspace(t)
	previewPath := filepath.Join(ws.root, "site", "index.html")

	_, err := run(t, nil, ws.args("generate", "--preview", previewPath)...)
	require.NoError(t, err)

	data, err := os.ReadFile(previewPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>ShuaTi</h1>")
	assert.Contains(t, string(data), "LintCode109")
}

func TestGenerateMissingTemplate(t *testing.T) {
	ws := newWorkspace(t)
	require.NoError(t, os.Remove(ws.template))

	_, err := run(t, nil, ws.args("generate")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(ws.output)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "nothing is written on failure")
}

func TestGenerateMalformedName(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "src/main/java/dp/Main.java", "// Difficulty: Easy\n")

	_, err := run(t, nil, ws.args("generate")...)
	assert.ErrorIs(t, err, model.ErrMalformedName)
}

func TestGenerateStrictLabels(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "src/main/java/graph/LintCode127.java", "// Difficulty: Medium\n")

	_, err := run(t, nil, ws.args("generate", "--strict-labels")...)
	assert.ErrorIs(t, err, model.ErrUnmappedLabel)

	_, err = run(t, nil, ws.args("generate")...)
	require.NoError(t, err)
	data, err := os.ReadFile(ws.output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/graph\"></a></td>")
}

func TestGenerateConfigFileAndEnv(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, "toc.yaml", "base_url: https://example.com/code/\nlabels:\n  dp: DP\n  tree: Trees\n")

	_, err := run(t, map[string]string{"TOC_BASE_URL": "https://env.example.com/src"},
		ws.args("generate", "--config", filepath.Join(ws.root, "toc.yaml"))...)
	require.NoError(t, err)

	data, err := os.ReadFile(ws.output)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "<a href=\"https://env.example.com/src/dp\">DP</a>")
	assert.NotContains(t, doc, "example.com/code")
	assert.NotContains(t, doc, "Dynamic Programming")
}

func TestGenerateRejectsInvalidSchedule(t *testing.T) {
	ws := newWorkspace(t)

	_, err := run(t, nil, ws.args("generate", "--schedule", "whenever")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}
