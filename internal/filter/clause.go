// Package filter narrows a dictionary of five-letter words by a set of
// constraint clauses and reports letter-frequency statistics over the result.
package filter

import (
	"fmt"
	"strings"
)

// Clause is one atomic filtering constraint. A word matches a clause set iff
// it matches every clause. Positions are 1-indexed; letters are uppercase.
type Clause interface {
	Match(word string) bool
	String() string
}

// PositionEquals requires an exact letter at a position.
type PositionEquals struct {
	Pos    int
	Letter byte
}

func (c PositionEquals) Match(word string) bool { return word[c.Pos-1] == c.Letter }
func (c PositionEquals) String() string         { return fmt.Sprintf("%d%c", c.Pos, c.Letter) }

// PositionExcludes forbids a set of letters at a position. Used for letters
// known present in the word but not at this slot.
type PositionExcludes struct {
	Pos     int
	Letters string
}

func (c PositionExcludes) Match(word string) bool {
	return strings.IndexByte(c.Letters, word[c.Pos-1]) < 0
}
func (c PositionExcludes) String() string { return fmt.Sprintf("%d!%s", c.Pos, c.Letters) }

// Contains requires the letter to appear anywhere in the word.
type Contains struct {
	Letter byte
}

func (c Contains) Match(word string) bool { return strings.IndexByte(word, c.Letter) >= 0 }
func (c Contains) String() string         { return fmt.Sprintf("-c %c", c.Letter) }

// NotContains forbids every listed letter anywhere in the word.
type NotContains struct {
	Letters string
}

func (c NotContains) Match(word string) bool { return !strings.ContainsAny(word, c.Letters) }
func (c NotContains) String() string         { return "-n " + c.Letters }

// StartsWith requires the first letter. Equivalent to PositionEquals at
// position 1, kept as its own variant to mirror the -s flag.
type StartsWith struct {
	Letter byte
}

func (c StartsWith) Match(word string) bool { return word[0] == c.Letter }
func (c StartsWith) String() string         { return fmt.Sprintf("-s %c", c.Letter) }

// EndsWith requires the last letter.
type EndsWith struct {
	Letter byte
}

func (c EndsWith) Match(word string) bool { return word[len(word)-1] == c.Letter }
func (c EndsWith) String() string         { return fmt.Sprintf("-e %c", c.Letter) }
