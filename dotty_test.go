package segtree

import (
	"bytes"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree, err := New([]int{1, 3, 5, 7}, intSum{})
	if err != nil {
		t.Fatal(err.Error())
	}
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("DOT output does not start with digraph header")
	}
	if !strings.Contains(out, "\"0\" -> \"1\"") {
		t.Errorf("DOT output misses root edge to left child")
	}
	if !strings.Contains(out, "16\\n[0,3]") {
		t.Errorf("DOT output misses root aggregate label, got:\n%s", out)
	}
}

func TestLazyTree2DotMarksPending(t *testing.T) {
	tree, err := NewLazy([]int{5, 5, 5, 5}, intMin{})
	if err != nil {
		t.Fatal(err.Error())
	}
	if err := tree.RangeUpdate(0, 1, 2); err != nil {
		t.Fatal(err.Error())
	}
	var buf bytes.Buffer
	LazyTree2Dot(tree, &buf)
	if !strings.Contains(buf.String(), "*2") {
		t.Errorf("DOT output misses pending marker, got:\n%s", buf.String())
	}
}

func TestDumpConsoleLevels(t *testing.T) {
	tree, err := New([]int{1, 2, 3, 4}, intSum{})
	if err != nil {
		t.Fatal(err.Error())
	}
	var buf bytes.Buffer
	DumpConsole(tree, &buf, nil)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 4 leaves in a balanced implicit tree: root, two inner, leaf level
	if len(lines) != 3 {
		t.Errorf("expected 3 levels, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[0,3] 10") {
		t.Errorf("root level misses aggregate, got %q", lines[0])
	}
}

func TestDumpConsoleLazyAnnotatesPending(t *testing.T) {
	tree, err := NewLazy([]int{5, 5, 5, 5}, intMin{})
	if err != nil {
		t.Fatal(err.Error())
	}
	if err := tree.RangeUpdate(0, 1, 2); err != nil {
		t.Fatal(err.Error())
	}
	var buf bytes.Buffer
	DumpConsoleLazy(tree, &buf, nil)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 levels, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(buf.String(), "2*2") {
		t.Errorf("dump misses pending annotation, got:\n%s", buf.String())
	}
}
