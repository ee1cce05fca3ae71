// Package builder turns a vocabulary spreadsheet into an Anki deck
// package. It reads the entries from the workbook, renders each one's
// detail columns into the HTML block shown on the card back, and writes
// a self-contained .apkg file.
package builder
