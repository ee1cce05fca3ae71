package anki

// Field names of the vocabulary note model. The enricher locates these
// same fields through AnkiConnect, so they must match the model embedded
// in generated packages exactly.
const (
	FieldWord    = "Word"
	FieldDetails = "Details"
)

// Note is a single vocabulary note destined for a deck package. Word
// holds the headword, Details an HTML block shown on the card back.
type Note struct {
	Word    string
	Details string
}
