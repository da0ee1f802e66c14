package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Game identifies one title of the Clausewitz/Jomini family.
type Game string

const (
	// GameCK3 is Crusader Kings III.
	GameCK3 Game = "ck3"
	// GameEU4 is Europa Universalis IV.
	GameEU4 Game = "eu4"
	// GameHOI4 is Hearts of Iron IV.
	GameHOI4 Game = "hoi4"
	// GameImperator is Imperator: Rome.
	GameImperator Game = "imperator"
	// GameStellaris is Stellaris.
	GameStellaris Game = "stellaris"
	// GameVic3 is Victoria 3.
	GameVic3 Game = "vic3"
)

// AllGamesToken is the directive token standing for every enumerated game.
const AllGamesToken = "all"

var allGames = []Game{GameCK3, GameEU4, GameHOI4, GameImperator, GameStellaris, GameVic3}

// AllGames returns the closed game enumeration in canonical order.
func AllGames() []Game {
	return slices.Clone(allGames)
}

// ParseGame resolves a game identifier. Matching is case-insensitive.
func ParseGame(s string) (Game, error) {
	g := Game(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(allGames, g) {
		return "", zerr.With(ErrUnknownGame, "game", s)
	}
	return g, nil
}

// String returns the identifier of the game.
func (g Game) String() string {
	return string(g)
}

// SortGames orders games canonically and removes duplicates.
func SortGames(games []Game) []Game {
	out := slices.Clone(games)
	slices.Sort(out)
	return slices.Compact(out)
}
