package types

import "strings"

// Languages the judge accepts for submissions.
var Languages = []string{"cpp", "python", "java", "git", "verilog"}

// ValidLanguage reports whether lang names a language the judge accepts.
// Matching is case-insensitive.
func ValidLanguage(lang string) bool {
	lang = strings.ToLower(lang)
	for _, elt := range Languages {
		if elt == lang {
			return true
		}
	}
	return false
}

// ProblemBrief is one row of a problem listing.
type ProblemBrief struct {
	ID    int    `json:"id"`
	Title string `json:"title,omitempty"`
}

// Example is one sample input/output pair from a problem statement.
type Example struct {
	Input       string `json:"input,omitempty"`
	Output      string `json:"output,omitempty"`
	Description string `json:"description,omitempty"`
}

// Problem is a full problem statement. The description, input, output,
// and data range fields hold judge-authored markdown, possibly with
// embedded $...$ latex math.
type Problem struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Input             string    `json:"input,omitempty"`
	Output            string    `json:"output,omitempty"`
	DataRange         string    `json:"data_range,omitempty"`
	Examples          []Example `json:"examples,omitempty"`
	LanguagesAccepted []string  `json:"languages_accepted,omitempty"`
	AllowPublicCode   bool      `json:"allow_public_code,omitempty"`
}
