package registry

import (
	"math"

	"github.com/arloliu/ctxdict/dictionary"
)

// Translation is the JSON form of one search result.
type Translation struct {
	Translation string    `json:"translation"`
	Frequency   float64   `json:"frequency"`
	Examples    []Example `json:"examples"`
}

// Example is the JSON form of a resolved example.
type Example struct {
	SrcLeftContext  string `json:"srcLeftContext"`
	SrcPhrase       string `json:"srcPhrase"`
	SrcRightContext string `json:"srcRightContext"`
	TrgLeftContext  string `json:"trgLeftContext"`
	TrgPhrase       string `json:"trgPhrase"`
	TrgRightContext string `json:"trgRightContext"`
}

func newTranslation(t dictionary.Translation, skipped func(dictionary.Example, error)) Translation {
	out := Translation{
		Translation: t.Text,
		Frequency:   t.Frequency,
		Examples:    make([]Example, 0, len(t.Examples)),
	}
	// JSON has no NaN; a translation set with no occurrences has frequency 0.
	if math.IsNaN(out.Frequency) {
		out.Frequency = 0
	}

	for _, ex := range t.Examples {
		src, err := ex.Source()
		if err != nil {
			skipped(ex, err)
			continue
		}
		trg, err := ex.Target()
		if err != nil {
			skipped(ex, err)
			continue
		}
		out.Examples = append(out.Examples, Example{
			SrcLeftContext:  src.Left,
			SrcPhrase:       src.Phrase,
			SrcRightContext: src.Right,
			TrgLeftContext:  trg.Left,
			TrgPhrase:       trg.Phrase,
			TrgRightContext: trg.Right,
		})
	}

	return out
}
