package score

import "sort"

// Entry is one leaderboard row. Date is a preformatted display string; the
// board never parses it.
type Entry struct {
	Name  string
	Score int
	Date  string
}

// Leaderboard keeps the top entries sorted by score, best first. Ties keep
// insertion order. The list never grows past maxEntries.
type Leaderboard struct {
	entries    []Entry
	maxEntries int
}

// Insert adds an entry, re-sorts, and truncates to capacity. An entry that
// does not make the cut is dropped.
func (l *Leaderboard) Insert(e Entry) {
	l.entries = append(l.entries, e)
	l.normalize()
}

// Qualifies reports whether a score would earn a slot: always when the board
// has room, otherwise only by beating the current last place.
func (l *Leaderboard) Qualifies(score int) bool {
	if len(l.entries) < l.maxEntries {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Entries returns a copy of the board, best first.
func (l *Leaderboard) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries on the board.
func (l *Leaderboard) Len() int {
	return len(l.entries)
}

// normalize restores the sorted-and-truncated invariant after a mutation or
// a load from storage.
func (l *Leaderboard) normalize() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Score > l.entries[j].Score
	})
	if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
		l.entries = l.entries[:l.maxEntries]
	}
}
