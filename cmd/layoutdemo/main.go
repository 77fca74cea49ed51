// Copyright (c) 2025, The parleygo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command layoutdemo runs a paragraph through the full ranged-builder,
// analysis, shaping, and line-breaking pipeline and prints the resulting
// lines. Analysis and shaping are stubbed with a fixed-width ASCII model
// so the demo has no font dependency; a real caller plugs in an actual
// [shaping.TextAnalyzer] and [shaping.Shaper].
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"unicode"

	"github.com/dfrg/parleygo/layout"
	"github.com/dfrg/parleygo/rich"
	"github.com/dfrg/parleygo/shaped"
	"github.com/dfrg/parleygo/shaping"
	"github.com/dfrg/parleygo/textpos"
)

func main() {
	text := flag.String("text", "The quick brown fox jumps over the lazy dog.", "paragraph text to lay out")
	width := flag.Float64("width", 200, "max line advance in layout units; 0 means unconstrained")
	size := flag.Float64("size", 16, "root font size in layout units")
	justify := flag.Bool("justify", false, "justify all but the last line")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	resolver := rich.NewResolver()
	builder := layout.NewRangedBuilder(resolver, nil, *text, 1)
	builder.PushDefault(rich.SizeProperty(float32(*size)))

	l := builder.Build(fixedWidthAnalyzer{}, fixedWidthShaper{cellAdvance: float32(*size) * 0.6}, noopQuery{})

	maxAdvance := float32(*width)
	if maxAdvance <= 0 {
		maxAdvance = float32(math.Inf(1))
	}
	alignment := layout.Start
	if *justify {
		alignment = layout.Justified
	}

	breaker := layout.NewBreakLines(l)
	breaker.BreakRemaining(maxAdvance, alignment)

	for i, line := range l.Lines {
		fmt.Printf("line %d: %q advance=%.1f spaces=%d reason=%v\n",
			i, (*text)[clampInt(line.TextRange.Start, 0, len(*text)):clampInt(line.TextRange.End, 0, len(*text))],
			line.Metrics.Advance, line.NumSpaces, line.BreakReason)
	}
	fmt.Printf("width=%.1f height=%.1f\n", l.Width, l.Height)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fixedWidthAnalyzer treats every rune as its own line-break opportunity
// boundary when it is whitespace, '\n' as a mandatory break, and performs
// no bidi analysis.
type fixedWidthAnalyzer struct{}

func (fixedWidthAnalyzer) Analyze(text string) (shaping.BidiInfo, []shaping.CharInfo) {
	infos := make([]shaping.CharInfo, len(text))
	levels := make([]uint8, len(text))
	for i, r := range text {
		ws := shaped.WhitespaceNotSpace
		boundary := shaped.BoundaryNone
		switch {
		case r == '\n':
			boundary = shaped.BoundaryMandatory
			ws = shaped.WhitespaceOther
		case r == ' ':
			ws = shaped.WhitespaceSpace
			boundary = shaped.BoundaryLine
		case unicode.IsSpace(r):
			ws = shaped.WhitespaceOther
			boundary = shaped.BoundaryLine
		}
		infos[i] = shaping.CharInfo{Boundary: boundary, Whitespace: ws}
	}
	return shaping.BidiInfo{BaseLevel: 0, Levels: levels}, infos
}

// fixedWidthShaper produces one cluster per byte of input, each run
// holding the whole text under style index 0's metrics, at a fixed
// per-character advance.
type fixedWidthShaper struct {
	cellAdvance float32
}

func (s fixedWidthShaper) Shape(input shaping.Input) ([]shaped.Run, []shaped.Cluster) {
	n := len(input.Text)
	if n == 0 {
		return nil, nil
	}
	clusters := make([]shaped.Cluster, n)
	for i := 0; i < n; i++ {
		boundary, ws := shaped.BoundaryNone, shaped.WhitespaceNotSpace
		if i < len(input.CharInfo) {
			boundary = input.CharInfo[i].Boundary
			ws = input.CharInfo[i].Whitespace
		}
		clusters[i] = shaped.Cluster{
			Advance: s.cellAdvance,
			Info: shaped.ClusterInfo{
				Boundary:   boundary,
				Whitespace: ws,
			},
			TextRange: textpos.Range{Start: i, End: i + 1},
		}
	}
	run := shaped.Run{
		StyleIndex:   0,
		ClusterRange: textpos.Range{Start: 0, End: n},
		TextRange:    textpos.Range{Start: 0, End: n},
		BidiLevel:    0,
		Ascent:       s.cellAdvance * 1.5,
		Descent:      s.cellAdvance * 0.4,
		Leading:      s.cellAdvance * 0.1,
	}
	return []shaped.Run{run}, clusters
}

// noopQuery never resolves a font; the demo's shaper ignores the result
// entirely since it never calls Query.
type noopQuery struct{}

func (noopQuery) Resolve(stack rich.FontStackID, weight float32, slant rich.FontSlant, stretch float32) (shaping.FontHandle, bool) {
	return shaping.FontHandle{}, false
}
