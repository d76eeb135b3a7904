package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/focusgrid/pkg/geom"
	"github.com/matzehuels/focusgrid/pkg/nav"
)

func testTree(t *testing.T) *nav.Tree {
	t.Helper()
	root := nav.NewRootBuilder("root", 10, 5)
	if err := root.AddElement(geom.MustRect(0, 1, 0, 1), "0_alpha"); err != nil {
		t.Fatal(err)
	}
	root.BindButton("R1", nav.JumpRightEdge)
	child := root.WithSublayout(geom.MustRect(0, 9, 2, 4), "child", 7, 10)
	if err := child.AddElement(geom.MustRect(0, 0, 0, 9), "1_alpha"); err != nil {
		t.Fatal(err)
	}
	tree, err := root.Build()
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestToDOT(t *testing.T) {
	tree := testTree(t)

	tests := []struct {
		name    string
		opts    Options
		want    []string
		notWant []string
	}{
		{
			name:    "layouts only",
			opts:    Options{},
			want:    []string{"digraph Layout {", `l0 [label="root"]`, `l1 [label="child"]`, "l0 -> l1;"},
			notWant: []string{"0_alpha", "1_alpha"},
		},
		{
			name: "elements",
			opts: Options{Elements: true, Focus: "1_alpha"},
			want: []string{`label="0_alpha"`, `label="1_alpha"`, "e1_0_0", "fillcolor=\"#5fafaf\""},
		},
		{
			name: "detailed",
			opts: Options{Detailed: true},
			want: []string{`label="root\n10x5\nR1: jump-right-edge"`, `l0 -> l1 [label="[x 0..9, y 2..4]"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDOT(tree, tt.opts)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToDOT() missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("ToDOT() contains %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestToDOTFocusOnlyHighlightsMatch(t *testing.T) {
	got := ToDOT(testTree(t), Options{Elements: true, Focus: "missing"})
	if strings.Contains(got, "penwidth") {
		t.Errorf("ToDOT() highlighted an element for an unknown focus:\n%s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testTree(t), Options{Elements: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), `viewBox="0 0 `) {
		t.Errorf("RenderSVG() did not normalize the viewBox")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" viewBox="0.00 0.00 120.25 80.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.25 80.00" width="120" height="80"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
