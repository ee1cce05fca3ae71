package builder

import (
	"fmt"
	"strings"

	"github.com/wxiaoyun/gre-prep/internal/vocab"
)

// DetailsHTML renders an entry's detail columns as the HTML block stored
// in the note's Details field. Each present column becomes one div, in
// the fixed column order below; absent columns leave no trace. An entry
// with only a word yields "".
func DetailsHTML(entry vocab.Entry) string {
	fragments := []struct {
		label string
		value string
	}{
		{vocab.ColumnUKPhonetics, entry.UKPhonetics},
		{vocab.ColumnUSPhonetics, entry.USPhonetics},
		{vocab.ColumnParaphrase, entry.Paraphrase},
		{vocab.ColumnParaphrasePOS, entry.ParaphrasePOS},
		{vocab.ColumnParaphraseEnglish, entry.ParaphraseEnglish},
	}

	var b strings.Builder
	for _, f := range fragments {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(&b, "<div><b>%s:</b> %s</div>", f.label, f.value)
	}
	return b.String()
}
