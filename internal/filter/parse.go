package filter

import (
	"errors"
	"fmt"
	"strings"

	"literumo/internal/types"
)

// ErrMalformedClause is returned for any unparseable or self-contradicting
// filter spec. Callers surface it as a usage error and re-prompt.
var ErrMalformedClause = errors.New("malformed clause")

// Parse turns a compact textual filter spec into clauses. Tokens are
// whitespace-separated:
//
//	<pos><letter>    exact letter at a 1-indexed position, e.g. 2r
//	<pos>!<letters>  letters excluded at a position, e.g. 4!ie
//	-s <letter>      word starts with the letter
//	-e <letter>      word ends with the letter
//	-c <letters>     every listed letter appears somewhere in the word
//	-n <letters>     no listed letter appears anywhere in the word
//
// Letters are case-insensitive. Specs that pin a position and also exclude
// letters at that same position, or that require and forbid the same letter,
// are rejected rather than resolved by precedence.
func Parse(spec string) ([]Clause, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty spec", ErrMalformedClause)
	}

	var clauses []Clause
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		switch tok {
		case "-s", "-e", "-c", "-n":
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("%w: flag %s is missing its letters", ErrMalformedClause, tok)
			}
			i++
			letters, err := normalizeLetters(fields[i])
			if err != nil {
				return nil, err
			}
			switch tok {
			case "-s":
				if len(letters) != 1 {
					return nil, fmt.Errorf("%w: -s takes a single letter, got %q", ErrMalformedClause, fields[i])
				}
				clauses = append(clauses, StartsWith{Letter: letters[0]})
			case "-e":
				if len(letters) != 1 {
					return nil, fmt.Errorf("%w: -e takes a single letter, got %q", ErrMalformedClause, fields[i])
				}
				clauses = append(clauses, EndsWith{Letter: letters[0]})
			case "-c":
				for j := 0; j < len(letters); j++ {
					clauses = append(clauses, Contains{Letter: letters[j]})
				}
			case "-n":
				clauses = append(clauses, NotContains{Letters: letters})
			}
		default:
			clause, err := parsePositional(tok)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		}
	}

	if err := validate(clauses); err != nil {
		return nil, err
	}
	return clauses, nil
}

// parsePositional handles the bare <pos><letter> and <pos>!<letters> tokens.
func parsePositional(tok string) (Clause, error) {
	if len(tok) < 2 || tok[0] < '1' || tok[0] > '0'+types.WordLength {
		return nil, fmt.Errorf("%w: token %q must start with a position 1-%d", ErrMalformedClause, tok, types.WordLength)
	}
	pos := int(tok[0] - '0')

	if tok[1] == '!' {
		letters, err := normalizeLetters(tok[2:])
		if err != nil {
			return nil, err
		}
		return PositionExcludes{Pos: pos, Letters: letters}, nil
	}

	letters, err := normalizeLetters(tok[1:])
	if err != nil {
		return nil, err
	}
	if len(letters) != 1 {
		return nil, fmt.Errorf("%w: token %q pins position %d to more than one letter", ErrMalformedClause, tok, pos)
	}
	return PositionEquals{Pos: pos, Letter: letters[0]}, nil
}

// normalizeLetters uppercases the input and rejects anything outside A-Z.
func normalizeLetters(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty letter list", ErrMalformedClause)
	}
	up := strings.ToUpper(s)
	for i := 0; i < len(up); i++ {
		if up[i] < 'A' || up[i] > 'Z' {
			return "", fmt.Errorf("%w: %q is not a letter", ErrMalformedClause, s[i])
		}
	}
	return up, nil
}

// validate rejects clause sets with contradictory constraints. StartsWith and
// EndsWith count as pins on the first and last positions.
func validate(clauses []Clause) error {
	pinned := make(map[int]byte)
	excluded := make(map[int]string)
	var required, forbidden string

	pin := func(pos int, letter byte) error {
		if prev, ok := pinned[pos]; ok && prev != letter {
			return fmt.Errorf("%w: position %d pinned to both %c and %c", ErrMalformedClause, pos, prev, letter)
		}
		pinned[pos] = letter
		return nil
	}

	for _, c := range clauses {
		switch c := c.(type) {
		case PositionEquals:
			if err := pin(c.Pos, c.Letter); err != nil {
				return err
			}
		case StartsWith:
			if err := pin(1, c.Letter); err != nil {
				return err
			}
		case EndsWith:
			if err := pin(types.WordLength, c.Letter); err != nil {
				return err
			}
		case PositionExcludes:
			excluded[c.Pos] += c.Letters
		case Contains:
			required += string(c.Letter)
		case NotContains:
			forbidden += c.Letters
		}
	}

	for pos := range pinned {
		if _, ok := excluded[pos]; ok {
			return fmt.Errorf("%w: position %d is both pinned and excluded", ErrMalformedClause, pos)
		}
	}
	for _, letter := range pinned {
		required += string(letter)
	}
	for i := 0; i < len(required); i++ {
		if strings.IndexByte(forbidden, required[i]) >= 0 {
			return fmt.Errorf("%w: letter %c is both required and forbidden", ErrMalformedClause, required[i])
		}
	}
	return nil
}
