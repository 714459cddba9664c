// Package hangman implements a single-word hangman game session.
//
// Each Game holds its own state. Callers create one with New, feed it
// letters through Guess, and render progress with Status. There is no
// package-level state, so concurrent servers can hold one game per
// session behind their own lock.
package hangman

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// maxWrongGuesses is the number of incorrect letters before the game is lost.
const maxWrongGuesses = 6

// ErrInvalidLetter is returned when a guess is not a single ASCII letter.
var ErrInvalidLetter = errors.New("guess must be a single letter")

// words is the pool a new game draws from.
var words = []string{
	"PYTHON", "JAVASCRIPT", "COMPUTER", "PROGRAMMING", "ALGORITHM",
	"DATABASE", "NETWORK", "SOFTWARE", "HARDWARE", "INTERNET",
	"FUNCTION", "VARIABLE", "BOOLEAN", "INTEGER", "STRING",
	"FRAMEWORK", "LIBRARY", "DEBUGGING", "COMPILER", "SYNTAX",
}

// stages holds the gallows drawing for 0 through maxWrongGuesses wrong
// guesses.
var stages = []string{
	`
   +---+
   |   |
       |
       |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
       |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
   |   |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|   |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
  /    |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
  / \  |
       |
=========`,
}

// Game is one hangman session. It is not safe for concurrent use; callers
// that share a game across goroutines must serialize access themselves.
type Game struct {
	word    string
	guessed map[rune]bool
	wrong   int
	over    bool
	won     bool
}

// Option configures a new game.
type Option func(*Game)

// WithWord fixes the secret word instead of drawing one at random. The word
// is upper-cased. Used in tests.
func WithWord(word string) Option {
	return func(g *Game) { g.word = strings.ToUpper(word) }
}

// New creates a game with a randomly chosen word.
func New(opts ...Option) *Game {
	g := &Game{guessed: make(map[rune]bool)}
	for _, opt := range opts {
		opt(g)
	}
	if g.word == "" {
		g.word = words[rand.Intn(len(words))]
	}
	return g
}

// WordLength reports how many letters the secret word has.
func (g *Game) WordLength() int {
	return len(g.word)
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Won reports whether the game ended with the word fully revealed.
func (g *Game) Won() bool {
	return g.won
}

// Guess plays a single letter and returns the full game report. Guesses that
// are not a single ASCII letter return ErrInvalidLetter without changing any
// state. Repeated letters and guesses after the game has ended are reported
// in the returned text, not as errors.
func (g *Game) Guess(letter string) (string, error) {
	if g.over {
		return "Game is over! Start a new game.\n\n" + g.Status(), nil
	}

	letter = strings.ToUpper(strings.TrimSpace(letter))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return "", fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	r := rune(letter[0])

	if g.guessed[r] {
		return fmt.Sprintf("You already guessed %q. Try a different letter!\n\n%s", letter, g.Status()), nil
	}
	g.guessed[r] = true

	var verdict string
	if strings.ContainsRune(g.word, r) {
		verdict = fmt.Sprintf("Nice! %q is in the word.", letter)
		if g.revealed() {
			g.over = true
			g.won = true
		}
	} else {
		verdict = fmt.Sprintf("Sorry, %q is not in the word.", letter)
		g.wrong++
		if g.wrong >= maxWrongGuesses {
			g.over = true
		}
	}
	return verdict + "\n\n" + g.Status(), nil
}

// revealed reports whether every letter of the word has been guessed.
func (g *Game) revealed() bool {
	for _, r := range g.word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// displayWord renders the word with unguessed letters masked.
func (g *Game) displayWord() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// guessedLetters lists the guessed letters in alphabetical order.
func (g *Game) guessedLetters() string {
	if len(g.guessed) == 0 {
		return "None"
	}
	letters := make([]string, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	return strings.Join(letters, ", ")
}

// Status renders the gallows, the masked word, and the guess counters. When
// the game has ended it also reveals the word and the outcome.
func (g *Game) Status() string {
	var b strings.Builder
	b.WriteString("```")
	b.WriteString(stages[g.wrong])
	b.WriteString("\n```\n")
	fmt.Fprintf(&b, "Word: %s\n", g.displayWord())
	fmt.Fprintf(&b, "Letters guessed: %s\n", g.guessedLetters())
	fmt.Fprintf(&b, "Wrong guesses: %d/%d\n", g.wrong, maxWrongGuesses)
	fmt.Fprintf(&b, "Remaining guesses: %d\n\n", maxWrongGuesses-g.wrong)

	switch {
	case g.over && g.won:
		fmt.Fprintf(&b, "CONGRATULATIONS! YOU WON!\nThe word was: %s", g.word)
	case g.over:
		fmt.Fprintf(&b, "GAME OVER! YOU LOST!\nThe word was: %s", g.word)
	default:
		b.WriteString("Keep guessing! Enter a letter...")
	}
	return b.String()
}

// StartMessage renders the banner returned when a new game begins, including
// a hint with the word length.
func (g *Game) StartMessage() string {
	return fmt.Sprintf("NEW HANGMAN GAME STARTED!\n\n%s\n\nHint: The word has %d letters and is related to programming/computers!",
		g.Status(), g.WordLength())
}

// Rules describes how to play.
func Rules() string {
	return strings.TrimSpace(`
HANGMAN GAME RULES

How to Play:
1. A random word related to programming/computers is chosen
2. You see blank spaces representing each letter: _ _ _ _ _
3. Guess letters one at a time
4. If your letter is in the word, it is revealed in all positions
5. If your letter is NOT in the word, part of the hangman is drawn
6. You have 6 wrong guesses before the hangman is complete

How to Win:
- Guess all letters in the word before making 6 wrong guesses

How to Lose:
- Make 6 wrong guesses and the hangman drawing is completed

Commands:
- Use hangman_start to begin a new game
- Use hangman_guess with a letter to guess
- Use hangman_status to see current progress
`)
}
