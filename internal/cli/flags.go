package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DeckName string

	// Build flags
	InputPath  string
	OutputPath string

	// Enrich flags
	AnkiURL string
	DictURL string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName:   "GRE Vocabulary",
		InputPath:  "data/3000.xlsx",
		OutputPath: "out/gre_vocabulary.apkg",
		AnkiURL:    "http://localhost:8765",
		DictURL:    "https://dict.meowrain.cn/api/dictionary/en-cn/",
	}
}
