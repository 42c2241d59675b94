package generator

// Entry is one generated word and the section it belongs to.
type Entry struct {
	Word         string
	SectionIndex int
}

// Record is the immutable ordered output of a generation. Repeating a test
// replays it verbatim.
type Record struct {
	entries []Entry
}

// NewRecord copies entries into a Record.
func NewRecord(entries []Entry) Record {
	return Record{entries: append([]Entry(nil), entries...)}
}

// Len returns the number of entries.
func (r Record) Len() int {
	return len(r.entries)
}

// At returns the entry at i.
func (r Record) At(i int) (Entry, bool) {
	if i < 0 || i >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the entries.
func (r Record) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Words returns the words in order.
func (r Record) Words() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Word
	}
	return out
}

// SectionIndexes returns the section index of every word.
func (r Record) SectionIndexes() []int {
	out := make([]int, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.SectionIndex
	}
	return out
}
