// Command filterctl is an interactive candidate-word filter. It reads filter
// specs from stdin, prints the matching words with letter-frequency
// statistics, and can rank the best next guesses over the match set.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"literumo/internal/filter"
	"literumo/internal/solver"
	"literumo/internal/words"
)

// options are the per-line switches that are not clauses.
type options struct {
	expanded bool // -x: filter the accepted list instead of the answer list
	rank     int  // -g [n]: rank the n best next guesses
}

func main() {
	_ = godotenv.Load()

	answersPath := flag.String("answers", envOr("ANSWER_WORDS", "data/answer_words.txt"), "path to the curated answer word list")
	acceptedPath := flag.String("accepted", envOr("ACCEPTED_WORDS", "data/accepted_words.txt"), "path to the accepted guess word list")
	flag.Parse()

	answers, err := words.Load(*answersPath)
	if err != nil {
		log.Fatalf("Failed to load answer words: %v", err)
	}
	accepted, err := words.Load(*acceptedPath)
	if err != nil {
		log.Fatalf("Failed to load accepted words: %v", err)
	}
	accepted = words.Normalize(append(accepted, answers...))

	colorstring.Printf("[cyan]Loaded %d answer words, %d accepted words\n", len(answers), len(accepted))
	fmt.Println("Enter filter spec (or 'help', 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			fmt.Print("> ")
			continue
		case "q", "quit", "exit":
			fmt.Println("Bye Bye.")
			return
		case "h", "help":
			printUsage()
			fmt.Print("> ")
			continue
		}

		spec, opts := extractOptions(line)
		clauses, err := filter.Parse(spec)
		if err != nil {
			colorstring.Printf("[red]%v\n", err)
			fmt.Print("> ")
			continue
		}

		dictionary := answers
		if opts.expanded {
			dictionary = accepted
		}
		res := filter.Apply(dictionary, clauses)
		printResult(res)

		if opts.rank > 0 && !res.Empty {
			rankGuesses(accepted, res.Matches, opts.rank)
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed reading input: %v", err)
	}
}

// extractOptions strips the -x and -g switches out of a line, leaving only
// clause tokens for the parser.
func extractOptions(line string) (string, options) {
	fields := strings.Fields(line)
	var opts options
	kept := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "-x":
			opts.expanded = true
		case "-g":
			opts.rank = 10
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					opts.rank = n
					i++
				}
			}
		default:
			kept = append(kept, fields[i])
		}
	}
	return strings.Join(kept, " "), opts
}

func printResult(res filter.Result) {
	if res.Empty {
		colorstring.Println("[yellow]==== 0 MATCHES ====")
		return
	}

	colorstring.Printf("[green]==== %d MATCHES ====\n", len(res.Matches))
	for _, w := range res.Matches {
		fmt.Println(w)
	}

	total := 0
	for _, lc := range res.Letters {
		total += lc.Count
	}
	fmt.Println("==== WORD LIST STATS ====")
	fmt.Printf("DISTRIBUTION FOR %d LETTER OCCURRENCES ACROSS %d MATCHING WORDS:\n", total, len(res.Matches))
	fmt.Println("LETTER  OCCURRENCE")
	for _, lc := range res.Letters {
		fmt.Printf("     %s  %d\n", lc.Letter, lc.Count)
	}

	fmt.Println("POSITION  RANKED LETTER FREQUENCY")
	for i, ranked := range res.Positions {
		parts := make([]string, 0, len(ranked))
		for _, lc := range ranked {
			parts = append(parts, fmt.Sprintf("%s:%d", lc.Letter, lc.Count))
		}
		fmt.Printf("%d  %s\n", i+1, strings.Join(parts, " "))
	}
}

// rankGuesses simulates every accepted word as a next guess against the
// current match set and prints the best performers.
func rankGuesses(guesses, matches []string, limit int) {
	bar := progressbar.Default(int64(len(guesses)), "ranking guesses")
	ranked, err := solver.RankGuesses(guesses, matches, limit, func(done, total int) {
		_ = bar.Add(1)
	})
	if err != nil {
		colorstring.Printf("[red]guess ranking failed: %v\n", err)
		return
	}

	fmt.Println("==== NEXT GUESS WORD RANKING ====")
	for _, gs := range ranked {
		fmt.Printf("%s  %.2f\n", gs.Guess, gs.Score)
	}
}

func printUsage() {
	fmt.Println(`Tokens (whitespace-separated, combined with AND):
  <pos><letter>    exact letter at a position, e.g. 2r
  <pos>!<letters>  letters excluded at a position, e.g. 4!ie
  -s <letter>      word starts with the letter
  -e <letter>      word ends with the letter
  -c <letters>     every listed letter appears somewhere
  -n <letters>     no listed letter appears anywhere
Switches:
  -x               filter the accepted list instead of the answer list
  -g [n]           rank the n best next guesses (default 10)
Example: -n tandc 2r 3i 4!ie -c e`)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
