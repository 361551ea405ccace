package label

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// positionedGlyph is a glyph id and its pen position in pixels, y down,
// relative to the start of the baseline.
type positionedGlyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// shaperPool pools HarfbuzzShaper instances, which keep internal buffers and
// are not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shape lays out s in f at size pixels per em. Glyphs come back in visual
// order, left to right.
func shape(f *Font, s string, size float64) []positionedGlyph {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: textDirection(s),
		// font.Face is not safe for concurrent use, so each call wraps the
		// shared Font in its own Face.
		Face:     gtfont.NewFace(f.shaper),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	out := make([]positionedGlyph, 0, len(output.Glyphs))
	var pen float64
	for _, g := range output.Glyphs {
		out = append(out, positionedGlyph{
			id: sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // sfnt glyph ids are 16 bit
			x:  pen + fixedToFloat(g.XOffset),
			y:  -fixedToFloat(g.YOffset),
		})
		pen += fixedToFloat(g.Advance)
	}
	return out
}

// textDirection returns the bidi direction of the first run of s. Text
// without strong characters, such as signed numbers, is left to right.
func textDirection(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if r := o.Run(0); r.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
