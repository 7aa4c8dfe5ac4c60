// SPDX-License-Identifier: MIT

// Package matrix - diagnostic dumps of a Graph's adjacency matrix.
//
// Two renderings, both for debugging only (not part of the algorithmic contract):
//   - String / Print: one row per line, integers in "[a, b, c]" form.
//   - WriteTable: a go-pretty table with vertex indices as row/column headers.

package matrix

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtCorner   = "#"
)

// String renders the adjacency matrix, one row per line.
// A 3-vertex graph with a single edge {0,1} of weight 5 renders as:
//
//	[0, 5, 0]
//	[5, 0, 0]
//	[0, 0, 0]
//
// Complexity: O(n²).
func (g *Graph) String() string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.n
		for j = 0; j < g.n; j++ {
			b.WriteString(strconv.FormatInt(g.data[base+j], 10))
			if j+1 < g.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Print writes String() to w.
func (g *Graph) Print(w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}
	_, err := io.WriteString(w, g.String())

	return err
}

// WriteTable renders the matrix as a bordered table. Absent edges are shown
// as "·" so the structure stands out; the diagonal is shown as "-".
func (g *Graph) WriteTable(w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, g.n+1)
	header = append(header, _fmtCorner)
	for j := 0; j < g.n; j++ {
		header = append(header, j)
	}
	t.AppendHeader(header)

	colCfg := make([]table.ColumnConfig, 0, g.n+1)
	for j := 1; j <= g.n+1; j++ {
		colCfg = append(colCfg, table.ColumnConfig{Number: j, Align: text.AlignRight})
	}
	t.SetColumnConfigs(colCfg)

	for i := 0; i < g.n; i++ {
		row := make(table.Row, 0, g.n+1)
		row = append(row, i)
		for j := 0; j < g.n; j++ {
			switch v := g.at(i, j); {
			case i == j:
				row = append(row, "-")
			case v == noEdge:
				row = append(row, "·")
			default:
				row = append(row, v)
			}
		}
		t.AppendRow(row)
	}
	t.Render()

	return nil
}
