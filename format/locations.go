package format

import (
	"github.com/Ki11erRabbit/Maru/errors"
	"github.com/Ki11erRabbit/Maru/format/internal/binary"
)

// SourceSpan is one (start, end) byte-offset pair into a source file.
type SourceSpan struct {
	Start uint32
	End   uint32
}

// Location is the source-location side table entry for one bytecode
// table entry: the source file it came from and the ordered list of
// spans covering each instruction.
type Location struct {
	File  StringIndex
	Spans []SourceSpan
}

// LocationsMap mirrors BytecodeTable 1:1 when present: entry i gives
// the source locations for bytecode table entry i. It may also be
// empty entirely when a module carries no debug info.
type LocationsMap struct {
	Entries []Location
}

func (m LocationsMap) encode(w *binary.Writer) {
	w.WriteU32(uint32(len(m.Entries)))
	for _, e := range m.Entries {
		w.WriteU32(e.File)
		w.WriteU32(uint32(len(e.Spans)))
		for _, s := range e.Spans {
			w.WriteU32(s.Start)
			w.WriteU32(s.End)
		}
	}
}

func decodeLocationsMap(r *binary.Reader) (LocationsMap, error) {
	count, ok := r.ReadU32()
	if !ok {
		return LocationsMap{}, errors.Truncated(errors.PhaseDecode, []string{"LocationsMap"}, 4, r.Len())
	}
	entries := make([]Location, 0, count)
	for i := uint32(0); i < count; i++ {
		file, ok := r.ReadU32()
		if !ok {
			return LocationsMap{}, errors.Truncated(errors.PhaseDecode, []string{"LocationsMap", "file"}, 4, r.Len())
		}
		spansLen, ok := r.ReadU32()
		if !ok {
			return LocationsMap{}, errors.Truncated(errors.PhaseDecode, []string{"LocationsMap", "locs_len"}, 4, r.Len())
		}
		spans := make([]SourceSpan, 0, spansLen)
		for j := uint32(0); j < spansLen; j++ {
			start, ok := r.ReadU32()
			if !ok {
				return LocationsMap{}, errors.Truncated(errors.PhaseDecode, []string{"LocationsMap", "span"}, 4, r.Len())
			}
			end, ok := r.ReadU32()
			if !ok {
				return LocationsMap{}, errors.Truncated(errors.PhaseDecode, []string{"LocationsMap", "span"}, 4, r.Len())
			}
			spans = append(spans, SourceSpan{Start: start, End: end})
		}
		entries = append(entries, Location{File: file, Spans: spans})
	}
	return LocationsMap{Entries: entries}, nil
}
