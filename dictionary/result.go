package dictionary

import (
	"github.com/arloliu/ctxdict/errs"
	"github.com/arloliu/ctxdict/record"
)

// Translation is one result of Dictionary.Search.
type Translation struct {
	Text        string
	Occurrences int64
	// Frequency is Occurrences divided by the total occurrences of all
	// translations of the phrase. It is NaN when that total is zero.
	Frequency float64
	Examples  []Example
}

func newTranslation(d *Dictionary, t *record.Translation, total int64) Translation {
	out := Translation{
		Text:        t.Text,
		Occurrences: t.Occurrences,
		Frequency:   float64(t.Occurrences) / float64(total),
		Examples:    make([]Example, len(t.Examples)),
	}
	for i, e := range t.Examples {
		out.Examples[i] = Example{Example: e, d: d}
	}

	return out
}

// Example is a sample occurrence of a translation, resolvable against the
// corpora of the dictionary it came from.
type Example struct {
	record.Example
	d *Dictionary
}

// Source returns the source sentence split around the phrase.
func (e Example) Source() (record.Context, error) {
	if e.d == nil || e.d.closed.Load() {
		return record.Context{}, errs.ErrClosed
	}

	return e.Example.Source().Resolve(e.d.src)
}

// Target returns the target sentence split around the translation.
func (e Example) Target() (record.Context, error) {
	if e.d == nil || e.d.closed.Load() {
		return record.Context{}, errs.ErrClosed
	}

	return e.Example.Target().Resolve(e.d.trg)
}

// Code returns the example code, sentenceId:srcStart:srcEnd:trgStart:trgEnd.
func (e Example) Code() string {
	return e.Example.String()
}
