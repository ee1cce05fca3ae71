package enricher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wxiaoyun/gre-prep/internal/anki"
	"github.com/wxiaoyun/gre-prep/internal/ankiconnect"
	"github.com/wxiaoyun/gre-prep/internal/dictionary"
)

// Config wires an enrichment run.
type Config struct {
	Deck       string
	Store      ankiconnect.API
	Dictionary dictionary.Lookuper
	Out        io.Writer // progress output, default os.Stdout
}

// Summary counts the outcomes of an enrichment run. Updated, Skipped
// and Failed always sum to Total.
type Summary struct {
	Updated int
	Skipped int // no usable definitions for the word
	Failed  int // AnkiConnect rejected the field update
	Total   int
}

// candidate is a card selected for enrichment.
type candidate struct {
	noteID  int64
	word    string
	details string
}

// Enricher runs the enrichment pipeline against one deck.
type Enricher struct {
	cfg Config
	out io.Writer
}

// New creates an Enricher from the given configuration.
func New(cfg Config) *Enricher {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return &Enricher{cfg: cfg, out: out}
}

// Run executes the full pipeline: probe AnkiConnect, select candidate
// cards, look up each word, and append the formatted definitions to the
// card. Lookup and update failures affect only the card at hand; the
// run continues with the next word.
func (e *Enricher) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	if _, err := e.cfg.Store.Version(ctx); err != nil {
		return summary, fmt.Errorf("cannot connect to Anki (is it running with the AnkiConnect add-on installed?): %w", err)
	}

	candidates, err := e.candidates(ctx)
	if err != nil {
		return summary, err
	}

	summary.Total = len(candidates)
	fmt.Fprintf(e.out, "Found %d cards to update\n", summary.Total)

	for i, c := range candidates {
		fmt.Fprintf(e.out, "Processing word %d/%d: %s\n", i+1, summary.Total, c.word)

		block := e.lookupDefinitions(ctx, c.word)
		if block == "" {
			fmt.Fprintf(e.out, "⚠ Skipping word '%s' - no valid definitions found\n", c.word)
			summary.Skipped++
			continue
		}

		fields := map[string]string{anki.FieldDetails: c.details + block}
		if err := e.cfg.Store.UpdateNoteFields(ctx, c.noteID, fields); err != nil {
			fmt.Fprintf(e.out, "✗ Failed to update card for word: %s (%v)\n", c.word, err)
			summary.Failed++
			continue
		}

		summary.Updated++
		fmt.Fprintf(e.out, "✓ Successfully updated card for word: %s\n", c.word)
	}

	fmt.Fprintf(e.out, "\nUpdate complete!\n")
	return summary, nil
}

// candidates lists the cards of the deck whose Details field has no
// definitions block yet.
func (e *Enricher) candidates(ctx context.Context) ([]candidate, error) {
	names, err := e.cfg.Store.DeckNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	fmt.Fprintf(e.out, "\nAvailable decks:\n")
	for _, name := range names {
		fmt.Fprintf(e.out, "- '%s'\n", name)
	}
	fmt.Fprintf(e.out, "\nLooking for deck: '%s'\n", e.cfg.Deck)

	noteIDs, err := e.cfg.Store.FindNotes(ctx, deckQuery(e.cfg.Deck))
	if err != nil {
		return nil, fmt.Errorf("failed to get notes from Anki: %w", err)
	}
	fmt.Fprintf(e.out, "\nFound %d total notes in the deck\n", len(noteIDs))
	if len(noteIDs) == 0 {
		return nil, nil
	}

	notes, err := e.cfg.Store.NotesInfo(ctx, noteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get note information: %w", err)
	}

	var candidates []candidate
	for _, note := range notes {
		details := note.Field(anki.FieldDetails)
		if !NeedsDefinitions(details) {
			continue
		}
		candidates = append(candidates, candidate{
			noteID:  note.NoteID,
			word:    note.Field(anki.FieldWord),
			details: details,
		})
	}

	fmt.Fprintf(e.out, "\nFiltered to %d notes that need updating\n", len(candidates))
	return candidates, nil
}

// lookupDefinitions fetches and formats the definitions block for a
// word. Lookup failures are reported as warnings and degrade to "", the
// same outcome as a word with no usable definitions.
func (e *Enricher) lookupDefinitions(ctx context.Context, word string) string {
	result, err := e.cfg.Dictionary.Lookup(ctx, word)
	if err != nil {
		var statusErr *dictionary.StatusError
		if errors.As(err, &statusErr) {
			fmt.Fprintf(e.out, "Warning: Failed to get definition for word '%s'. Status code: %d\n", word, statusErr.StatusCode)
		} else {
			fmt.Fprintf(e.out, "Warning: API request failed for word '%s': %v\n", word, err)
		}
		return ""
	}
	return FormatDefinitions(result)
}

// deckQuery builds the Anki search query selecting every note of a deck.
func deckQuery(deck string) string {
	return `deck:"` + deck + `"`
}
