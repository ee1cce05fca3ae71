package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wxiaoyun/gre-prep/internal/ankiconnect"
	"github.com/wxiaoyun/gre-prep/internal/dictionary"
	"github.com/wxiaoyun/gre-prep/internal/enricher"
)

func newEnrichCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Append dictionary definitions to the cards of an Anki deck",
		Long: `enrich connects to a running Anki instance through the AnkiConnect
add-on, selects the cards of the deck that have no definitions block yet,
looks each word up in the dictionary service, and appends the formatted
definitions to the card's Details field.

Anki must be running with the AnkiConnect add-on installed. Cards whose
word the dictionary does not know are skipped and reported at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck whose cards are enriched")
	cmd.Flags().StringVar(&flags.AnkiURL, "anki-url", flags.AnkiURL, "AnkiConnect endpoint URL")
	cmd.Flags().StringVar(&flags.DictURL, "dict-url", flags.DictURL, "Dictionary API base URL")

	return cmd
}

func runEnrich(cmd *cobra.Command, flags *Flags) error {
	applyConfigString(cmd, "deck-name", "deck.name", &flags.DeckName)
	applyConfigString(cmd, "anki-url", "anki.url", &flags.AnkiURL)
	applyConfigString(cmd, "dict-url", "dictionary.url", &flags.DictURL)

	enr := enricher.New(enricher.Config{
		Deck:       flags.DeckName,
		Store:      ankiconnect.NewClient(flags.AnkiURL),
		Dictionary: dictionary.NewClient(flags.DictURL),
	})

	summary, err := enr.Run(cmd.Context())
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

// printSummary renders the run counters, as a table on a terminal and
// as plain lines when output is piped.
func printSummary(summary enricher.Summary) {
	if stdoutIsTerminal() {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Result", "Cards"})
		t.AppendRows([]table.Row{
			{"Successfully updated", summary.Updated},
			{"Skipped (no definitions)", summary.Skipped},
			{"Failed updates", summary.Failed},
		})
		t.AppendFooter(table.Row{"Total processed", summary.Total})
		fmt.Println(t.Render())
		return
	}

	fmt.Printf("- Successfully updated: %d cards\n", summary.Updated)
	fmt.Printf("- Skipped (no definitions): %d cards\n", summary.Skipped)
	if summary.Failed > 0 {
		fmt.Printf("- Failed updates: %d cards\n", summary.Failed)
	}
	fmt.Printf("- Total processed: %d cards\n", summary.Total)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
