// Package words loads and normalizes newline-delimited five-letter word
// lists. A list is read once at startup and treated as an immutable snapshot.
package words

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/samber/lo"

	"literumo/internal/types"
)

// Load reads a newline-delimited word list from disk. Blank lines and lines
// starting with # are ignored; remaining entries go through Normalize.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return Normalize(list), nil
}

// Normalize uppercases entries, drops anything that is not exactly five
// ASCII letters, and removes duplicates while preserving order.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		upper := strings.ToUpper(strings.TrimSpace(w))
		if !isFiveLetters(upper) {
			log.Printf("Skipping word %q: not 5 letters", w)
			continue
		}
		if _, dup := seen[upper]; dup {
			continue
		}
		seen[upper] = struct{}{}
		out = append(out, upper)
	}
	return out
}

// Set builds a membership set for guess validation.
func Set(list []string) map[string]struct{} {
	return lo.SliceToMap(list, func(w string) (string, struct{}) {
		return w, struct{}{}
	})
}

func isFiveLetters(w string) bool {
	if len(w) != types.WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
