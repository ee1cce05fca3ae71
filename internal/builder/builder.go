package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wxiaoyun/gre-prep/internal/anki"
	"github.com/wxiaoyun/gre-prep/internal/vocab"
)

// Config carries the inputs of a deck build run.
type Config struct {
	InputPath  string // vocabulary workbook (xlsx)
	OutputPath string // deck package to write (.apkg)
	DeckName   string
}

// Result reports what a build run produced.
type Result struct {
	Notes  int
	Output string
}

// Run reads the vocabulary workbook and writes the deck package. Every
// entry becomes exactly one note.
func Run(cfg Config) (Result, error) {
	entries, err := vocab.ReadWorkbook(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}

	gen := anki.NewAPKGGenerator(cfg.DeckName)
	for _, entry := range entries {
		gen.AddNote(anki.Note{
			Word:    entry.Word,
			Details: DetailsHTML(entry),
		})
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Result{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := gen.GenerateAPKG(cfg.OutputPath); err != nil {
		return Result{}, err
	}

	return Result{Notes: gen.NoteCount(), Output: cfg.OutputPath}, nil
}
