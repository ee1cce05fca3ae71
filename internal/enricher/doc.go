// Package enricher appends dictionary definitions to the cards of an
// existing Anki deck. It queries AnkiConnect for the notes of a deck,
// keeps the ones whose Details field has no definitions block yet, looks
// each word up in the dictionary service, and writes the formatted block
// back through AnkiConnect. This package serves as the main coordinator
// for the enrichment run.
package enricher
