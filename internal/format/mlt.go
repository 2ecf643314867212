package format

import (
	"fmt"
	"strings"

	"github.com/editkit/cutscribe/internal/transcript"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// MLT generates an MLT project document from a multi-file batch. Each
// distinct source file becomes one producer, numbered in the batch's
// first-seen order, and every valid segment becomes a playlist entry
// referencing its file's producer with in/out as 3-decimal seconds and
// the text embedded as a shotcut caption property.
func MLT(batch *transcript.Batch) string {
	var producers strings.Builder
	var entries strings.Builder

	for id, path := range batch.Files() {
		fmt.Fprintf(&producers, "  <producer id=\"producer%d\" resource=\"%s\"/>\n",
			id, xmlEscaper.Replace(path))

		for _, seg := range batch.Segments(path) {
			if !seg.Valid() {
				continue
			}
			fmt.Fprintf(&entries, "    <entry producer=\"producer%d\" in=\"%.3f\" out=\"%.3f\">\n",
				id, seg.Start, seg.End)
			fmt.Fprintf(&entries, "      <property name=\"shotcut:caption\">%s</property>\n",
				xmlEscaper.Replace(strings.TrimSpace(seg.Text)))
			entries.WriteString("    </entry>\n")
		}
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<mlt>\n")
	b.WriteString(producers.String())
	b.WriteString("  <playlist id=\"playlist0\">\n")
	b.WriteString(entries.String())
	b.WriteString("  </playlist>\n")
	b.WriteString("  <tractor id=\"tractor0\">\n    <track producer=\"playlist0\"/>\n  </tractor>\n</mlt>\n")
	return b.String()
}
