// Package render draws the interpreted diagram as a Graphviz node-link
// graph, for inspecting what the converter extracted before trusting the
// ontology output.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ricodraw/ricodraw/pkg/drawio"
	"github.com/ricodraw/ricodraw/pkg/errors"
)

// ToDOT converts interpreted individuals and arrows to Graphviz DOT format.
// Individuals are rendered as boxes labeled with their identifier and class
// memberships; literal arrow targets become plain ellipses. The resulting
// DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(individuals []drawio.Individual, arrows []drawio.Arrow) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	classes := make(map[string][]string)
	var order []string
	for _, ind := range individuals {
		if _, ok := classes[ind.Identifier]; !ok {
			order = append(order, ind.Identifier)
		}
		classes[ind.Identifier] = append(classes[ind.Identifier], ind.Class)
	}

	for _, id := range order {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmtLabel(id, classes[id]))
	}

	// Literal targets have no node of their own; give each distinct value an
	// ellipse so dangling datatype facts stay visible.
	seen := make(map[string]struct{})
	for _, a := range arrows {
		if _, ok := classes[a.Target]; ok {
			continue
		}
		if _, dup := seen[a.Target]; dup {
			continue
		}
		seen[a.Target] = struct{}{}
		fmt.Fprintf(&buf, "  %q [shape=ellipse, style=filled, fillcolor=lightgrey];\n", a.Target)
	}

	buf.WriteString("\n")
	for _, a := range arrows {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, fontsize=12];\n", a.Source, a.Target, a.Name)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id string, classes []string) string {
	sorted := append([]string(nil), classes...)
	sort.Strings(sorted)
	return id + "\n" + strings.Join(sorted, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderFormat(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderFormat(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderFormat runs Graphviz over a DOT graph. Graphviz failures are not
// part of the converter's failure taxonomy, so they surface generically.
func renderFormat(dot string, format graphviz.Format, buf *bytes.Buffer) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
