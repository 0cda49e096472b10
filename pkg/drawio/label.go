package drawio

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractText reconstructs readable paragraph-structured text from a
// markup-bearing cell label. draw.io stores multi-line labels as nested
// block containers: each div or p contributes one chunk of text, an empty
// container contributes an empty chunk. Consecutive non-empty chunks
// concatenate, a single empty chunk between them is an intra-paragraph line
// break and is dropped, and a run of two or more empty chunks collapses to
// exactly one paragraph break. The result is trimmed of surrounding
// whitespace.
//
// The function is pure: all state is per-call, so it is safe for concurrent
// use.
func ExtractText(raw string) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		// The tokenizer recovers from almost anything; treat a hard
		// failure as a plain-text label.
		return strings.TrimSpace(raw)
	}

	var c chunker
	for _, n := range nodes {
		c.walk(n)
	}
	c.boundary()

	return joinChunks(c.chunks)
}

// chunker accumulates text chunks while walking the label's node tree.
type chunker struct {
	chunks  []string
	pending strings.Builder
}

func (c *chunker) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.pending.WriteString(strings.ReplaceAll(n.Data, "\u00a0", " "))
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br, atom.Hr:
			// A line break closes the current chunk; a break with
			// nothing before it stands for an empty line.
			if !c.boundary() {
				c.chunks = append(c.chunks, "")
			}
		case atom.Div, atom.P:
			c.boundary()
			before := len(c.chunks)
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.walk(child)
			}
			if !c.boundary() && len(c.chunks) == before {
				// An empty container is an explicit empty chunk.
				c.chunks = append(c.chunks, "")
			}
		default:
			// Inline markup (span, b, font, ...) accumulates into the
			// surrounding chunk.
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.walk(child)
			}
		}
	}
}

// boundary flushes pending text as a chunk. It reports whether a chunk was
// produced.
func (c *chunker) boundary() bool {
	if c.pending.Len() == 0 {
		return false
	}
	c.chunks = append(c.chunks, c.pending.String())
	c.pending.Reset()
	return true
}

// joinChunks runs the paragraph-reconstruction state machine over the chunk
// sequence.
func joinChunks(chunks []string) string {
	var out strings.Builder
	emptyRun := 0
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			emptyRun++
			continue
		}
		if emptyRun >= 2 && out.Len() > 0 {
			out.WriteString("\n\n")
		}
		emptyRun = 0
		out.WriteString(chunk)
	}
	return strings.TrimSpace(out.String())
}
