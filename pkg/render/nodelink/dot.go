package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tilestitch/pkg/adjacency"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels nodes with their kind and links with the sides they
	// join. When false, nodes show only the tile id.
	Detailed bool
}

var kindFill = map[adjacency.Kind]string{
	adjacency.KindCorner:   "#f4a261",
	adjacency.KindBorder:   "#e9c46a",
	adjacency.KindInterior: "white",
	adjacency.KindInvalid:  "#e76f51",
}

// ToDOT converts a neighbour table to Graphviz DOT format. The result can be
// rendered with [RenderSVG].
func ToDOT(t *adjacency.Table, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, id := range t.IDs() {
		kind := t.Kind(id)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(id), strings.Join(nodeAttrs(id, kind, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, l := range t.Links() {
		attrs := linkAttrs(l, opts.Detailed)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", strconv.Itoa(l.A), strconv.Itoa(l.B))
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", strconv.Itoa(l.A), strconv.Itoa(l.B), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(id int, kind adjacency.Kind, detailed bool) []string {
	label := strconv.Itoa(id)
	if detailed {
		label += "\n" + kind.String()
	}
	attrs := []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("fillcolor=%q", kindFill[kind])}
	if kind == adjacency.KindCorner {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func linkAttrs(l adjacency.Link, detailed bool) []string {
	var attrs []string
	if l.Mirrored {
		attrs = append(attrs, "style=dashed")
	}
	if detailed {
		attrs = append(attrs, fmt.Sprintf("taillabel=%q", l.SideA.String()), fmt.Sprintf("headlabel=%q", l.SideB.String()), "fontsize=10")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so that the diagram scales from
// the origin with explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
