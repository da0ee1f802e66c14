package domain

import (
	"bytes"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DirectivePrefix starts the first line of every corpus file.
const DirectivePrefix = "# @babblewitz:games:"

// GameSet is the resolved game categorization of a corpus file: either the
// universal marker or an explicit, non-empty list of games.
type GameSet struct {
	all   bool
	games []Game
}

// AllGameSet returns the set standing for every enumerated game.
func AllGameSet() GameSet {
	return GameSet{all: true}
}

// NewGameSet returns an explicit set. Duplicates are dropped and first-seen
// order is kept.
func NewGameSet(games ...Game) GameSet {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if !slices.Contains(out, g) {
			out = append(out, g)
		}
	}
	return GameSet{games: out}
}

// IsAll reports whether the set is the universal marker.
func (s GameSet) IsAll() bool {
	return s.all
}

// IsEmpty reports whether the set matches no game.
func (s GameSet) IsEmpty() bool {
	return !s.all && len(s.games) == 0
}

// Contains reports whether g belongs to the set.
func (s GameSet) Contains(g Game) bool {
	return s.all || slices.Contains(s.games, g)
}

// Games expands the set to concrete games. The universal marker expands to the
// whole enumeration.
func (s GameSet) Games() []Game {
	if s.all {
		return AllGames()
	}
	return slices.Clone(s.games)
}

// String renders the set the way it is written in a directive.
func (s GameSet) String() string {
	if s.all {
		return AllGamesToken
	}
	parts := make([]string, len(s.games))
	for i, g := range s.games {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

// ParseDirective parses the first line of a corpus file. The line must carry the
// directive prefix followed by at least one game token or the token "all".
// Leading and trailing whitespace around the line is ignored.
func ParseDirective(line string) (GameSet, error) {
	trimmed := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(trimmed, DirectivePrefix)
	if !ok {
		return GameSet{}, zerr.With(ErrMalformedDirective, "reason", "missing games directive")
	}

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return GameSet{}, zerr.With(ErrMalformedDirective, "reason", "directive lists no games")
	}

	var (
		all   bool
		games []Game
	)
	for _, tok := range tokens {
		if tok == AllGamesToken {
			all = true
			continue
		}
		g, err := ParseGame(tok)
		if err != nil {
			return GameSet{}, zerr.With(zerr.With(ErrMalformedDirective, "reason", "unrecognized game"), "game", tok)
		}
		games = append(games, g)
	}
	if all {
		return AllGameSet(), nil
	}
	return NewGameSet(games...), nil
}

// ParseCorpusContent splits raw file content into its directive and the body
// that is fed to implementations. The directive line and its terminator (LF, CR
// or CRLF) are removed; the body bytes are otherwise passed through untouched.
func ParseCorpusContent(content []byte) (GameSet, []byte, error) {
	end := bytes.IndexAny(content, "\r\n")
	line, body := content, []byte(nil)
	if end >= 0 {
		line = content[:end]
		next := end + 1
		if content[end] == '\r' && next < len(content) && content[next] == '\n' {
			next++
		}
		body = content[next:]
	}

	games, err := ParseDirective(string(line))
	if err != nil {
		return GameSet{}, nil, err
	}
	return games, slices.Clip(body), nil
}
