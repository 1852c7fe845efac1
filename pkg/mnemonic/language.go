package mnemonic

import "sort"

// Supported language codes.
const (
	English    = "en"
	Spanish    = "es"
	French     = "fr"
	Italian    = "it"
	Japanese   = "ja"
	Portuguese = "pt"
)

// ideographicSpace (U+3000) separates words in Japanese phrases.
const ideographicSpace = "　"

// language binds a code to its bundled wordlist file and phrase delimiter.
type language struct {
	name      string
	file      string
	delimiter string
}

var languages = map[string]language{
	English:    {name: "English", file: "wordlists/en.txt", delimiter: " "},
	Spanish:    {name: "Spanish", file: "wordlists/es.txt", delimiter: " "},
	French:     {name: "French", file: "wordlists/fr.txt", delimiter: " "},
	Italian:    {name: "Italian", file: "wordlists/it.txt", delimiter: " "},
	Japanese:   {name: "Japanese", file: "wordlists/ja.txt", delimiter: ideographicSpace},
	Portuguese: {name: "Portuguese", file: "wordlists/pt.txt", delimiter: " "},
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
