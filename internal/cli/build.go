package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wxiaoyun/gre-prep/internal/builder"
)

func newBuildCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert the vocabulary spreadsheet into an Anki deck package",
		Long: `build reads the vocabulary workbook, renders each row into a flashcard,
and writes a self-contained .apkg deck package that Anki imports directly.

Rows without a value in the Word column are skipped. The optional columns
(UK Phonetics, US Phonetics, Paraphrase, Paraphrase (w/ POS),
Paraphrase (English)) fill the back of the card when present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.InputPath, "input", "i", flags.InputPath, "Vocabulary workbook (xlsx)")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", flags.OutputPath, "Deck package file to write")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for the generated package")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *Flags) error {
	// Config file values apply only for flags left at their defaults
	applyConfigString(cmd, "input", "build.input", &flags.InputPath)
	applyConfigString(cmd, "output", "build.output", &flags.OutputPath)
	applyConfigString(cmd, "deck-name", "deck.name", &flags.DeckName)

	result, err := builder.Run(builder.Config{
		InputPath:  flags.InputPath,
		OutputPath: flags.OutputPath,
		DeckName:   flags.DeckName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Successfully created Anki deck with %d cards in %s\n", result.Notes, result.Output)
	return nil
}
