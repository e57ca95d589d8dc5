package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/tilestitch/internal/fixture"
	"github.com/matzehuels/tilestitch/pkg/adjacency"
	"github.com/matzehuels/tilestitch/pkg/tile"
)

func sampleTable(t *testing.T) *adjacency.Table {
	t.Helper()
	set, err := tile.ParseString(fixture.Sample)
	if err != nil {
		t.Fatal(err)
	}
	table, err := adjacency.Resolve(set)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestToDOT(t *testing.T) {
	table := sampleTable(t)
	dot := ToDOT(table, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should start with an undirected graph header, got %q", dot[:20])
	}
	for _, id := range []string{`"1171"`, `"1427"`, `"3079"`} {
		if !strings.Contains(dot, id) {
			t.Errorf("DOT missing node %s", id)
		}
	}
	if got := strings.Count(dot, " -- "); got != 12 {
		t.Errorf("got %d links, want 12", got)
	}
	if got := strings.Count(dot, "penwidth=2"); got != 4 {
		t.Errorf("got %d highlighted corners, want 4", got)
	}
	if strings.Contains(dot, "taillabel") {
		t.Error("side labels should only appear in detailed mode")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleTable(t), Options{Detailed: true})

	if !strings.Contains(dot, `label="1427\ninterior"`) {
		t.Error("detailed node label should include the tile kind")
	}
	if !strings.Contains(dot, "taillabel=") || !strings.Contains(dot, "headlabel=") {
		t.Error("detailed links should carry side labels")
	}
}

func TestToDOT_MirroredLinksDashed(t *testing.T) {
	table := sampleTable(t)
	mirrored := 0
	for _, l := range table.Links() {
		if l.Mirrored {
			mirrored++
		}
	}
	if mirrored == 0 {
		t.Fatal("sample should contain mirrored links")
	}
	if got := strings.Count(ToDOT(table, Options{}), "style=dashed"); got != mirrored {
		t.Errorf("got %d dashed links, want %d", got, mirrored)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTable(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Error("root svg tag should be normalized")
	}
	if !strings.Contains(s, "1427") {
		t.Error("SVG should contain node labels")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites root",
			in:   `<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 5"></svg>`,
			want: `<svg viewBox="0 0 0 5"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}
