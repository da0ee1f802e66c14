package domain

import (
	"slices"
	"strings"
)

// CorpusEntry is one categorized sample file. Content has the directive line
// removed. Entries are read-only once loaded.
type CorpusEntry struct {
	// Path is relative to the corpus root and uses forward slashes.
	Path    string
	Content []byte
	Games   GameSet
	// Digest is the hex content hash of the full file, directive included.
	Digest string
}

// RejectedFile is a corpus file that was excluded from the index.
type RejectedFile struct {
	Path   string
	Reason error
}

// Corpus is the result of loading a corpus directory.
type Corpus struct {
	Index    *CorpusIndex
	Rejected []RejectedFile
}

// CorpusIndex maps each game to the entries valid for it, ordered by path.
// It is safe for concurrent reads.
type CorpusIndex struct {
	entries []*CorpusEntry
	byGame  map[Game][]*CorpusEntry
}

// PlannedEntry pairs an entry with the games it is to be run under.
type PlannedEntry struct {
	Entry *CorpusEntry
	Games []Game
}

// BuildIndex groups entries by game. An entry tagged "all" lands in every game
// bucket. Entries with an empty game set are never indexed.
func BuildIndex(entries []*CorpusEntry) *CorpusIndex {
	sorted := slices.Clone(entries)
	sorted = slices.DeleteFunc(sorted, func(e *CorpusEntry) bool {
		return e == nil || e.Games.IsEmpty()
	})
	slices.SortStableFunc(sorted, func(a, b *CorpusEntry) int {
		return strings.Compare(a.Path, b.Path)
	})

	idx := &CorpusIndex{
		entries: sorted,
		byGame:  make(map[Game][]*CorpusEntry, len(allGames)),
	}
	for _, e := range sorted {
		for _, g := range allGames {
			if e.Games.Contains(g) {
				idx.byGame[g] = append(idx.byGame[g], e)
			}
		}
	}
	return idx
}

// EntriesFor returns the entries valid for g, ordered by path. The result is
// empty when nothing matches.
func (x *CorpusIndex) EntriesFor(g Game) []*CorpusEntry {
	if x == nil {
		return nil
	}
	return slices.Clone(x.byGame[g])
}

// Entries returns every indexed entry ordered by path.
func (x *CorpusIndex) Entries() []*CorpusEntry {
	if x == nil {
		return nil
	}
	return slices.Clone(x.entries)
}

// Len returns the number of indexed entries.
func (x *CorpusIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Plan resolves which entries an implementation declaring games must run, and
// under which of its games each one runs. Games keep the order of the
// argument; entries keep path order. Entries matching none of the games are
// left out.
func (x *CorpusIndex) Plan(games []Game) []PlannedEntry {
	if x == nil {
		return nil
	}
	var plan []PlannedEntry
	for _, e := range x.entries {
		var applicable []Game
		for _, g := range games {
			if e.Games.Contains(g) && !slices.Contains(applicable, g) {
				applicable = append(applicable, g)
			}
		}
		if len(applicable) > 0 {
			plan = append(plan, PlannedEntry{Entry: e, Games: applicable})
		}
	}
	return plan
}
