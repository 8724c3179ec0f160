package document

import (
	"sort"
	"strconv"
)

// DeltaDecorations removes the decorations named by old and adds next,
// returning the ids issued for next in the same order. Unknown ids in old
// are ignored.
func (b *Buffer) DeltaDecorations(old []DecorationID, next []Decoration) []DecorationID {
	for _, id := range old {
		delete(b.decorations, id)
	}

	ids := make([]DecorationID, 0, len(next))
	for _, d := range next {
		b.nextDecID++
		id := DecorationID("dec-" + strconv.FormatUint(b.nextDecID, 10))
		b.decorations[id] = d
		ids = append(ids, id)
	}
	return ids
}

// Decorations returns the live decoration set ordered by line.
func (b *Buffer) Decorations() []Decoration {
	out := make([]Decoration, 0, len(b.decorations))
	for _, d := range b.decorations {
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line == out[j].Line {
			return out[i].GlyphClass < out[j].GlyphClass
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// DecorationAt returns the first decoration attached to line.
func (b *Buffer) DecorationAt(line int) (Decoration, bool) {
	for _, d := range b.Decorations() {
		if d.Line == line {
			return d, true
		}
	}
	return Decoration{}, false
}

// DecorationsByLine indexes the live decorations by line.
func (b *Buffer) DecorationsByLine() map[int]Decoration {
	out := make(map[int]Decoration, len(b.decorations))
	for _, d := range b.Decorations() {
		if _, ok := out[d.Line]; !ok {
			out[d.Line] = d
		}
	}
	return out
}
