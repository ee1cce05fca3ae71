package vocab

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column headers the reader recognizes in the first row of the sheet.
// Only Word is mandatory; the others enrich the card back when present.
const (
	ColumnWord              = "Word"
	ColumnUKPhonetics       = "UK Phonetics"
	ColumnUSPhonetics       = "US Phonetics"
	ColumnParaphrase        = "Paraphrase"
	ColumnParaphrasePOS     = "Paraphrase (w/ POS)"
	ColumnParaphraseEnglish = "Paraphrase (English)"
)

// Entry is a single vocabulary row read from the spreadsheet.
type Entry struct {
	Word              string
	UKPhonetics       string
	USPhonetics       string
	Paraphrase        string
	ParaphrasePOS     string
	ParaphraseEnglish string
}

// ReadWorkbook reads the vocabulary entries from the first sheet of an
// xlsx workbook. The first row must be a header row containing a Word
// column; headers are matched by exact text. Rows with an empty Word
// cell are dropped.
func ReadWorkbook(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s contains no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	columns := headerIndex(rows[0])
	wordCol, ok := columns[ColumnWord]
	if !ok {
		return nil, fmt.Errorf("workbook %s has no %q column", path, ColumnWord)
	}

	var entries []Entry
	for _, cells := range rows[1:] {
		word := cellValue(cells, wordCol)
		if word == "" {
			// No word means no card, same as an entirely blank row.
			continue
		}
		entries = append(entries, Entry{
			Word:              word,
			UKPhonetics:       lookupCell(cells, columns, ColumnUKPhonetics),
			USPhonetics:       lookupCell(cells, columns, ColumnUSPhonetics),
			Paraphrase:        lookupCell(cells, columns, ColumnParaphrase),
			ParaphrasePOS:     lookupCell(cells, columns, ColumnParaphrasePOS),
			ParaphraseEnglish: lookupCell(cells, columns, ColumnParaphraseEnglish),
		})
	}

	return entries, nil
}

// headerIndex maps header text to its column position. The first
// occurrence wins when a header repeats.
func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

// cellValue returns the cell at index i, tolerating short rows. The
// xlsx format omits trailing empty cells, so rows are often shorter
// than the header.
func cellValue(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func lookupCell(cells []string, columns map[string]int, name string) string {
	col, ok := columns[name]
	if !ok {
		return ""
	}
	return cellValue(cells, col)
}
