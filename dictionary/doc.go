// Package dictionary builds and queries phrase translation dictionaries.
//
// A dictionary is a single immutable file holding a compressed trie of
// source-language phrases, their translations with occurrence counts, and the
// two sides of the parallel corpus the translations were extracted from.
// Build writes a file from a sorted phrase stream and the corpora; Open,
// OpenFile and OpenCompressed load one for querying.
//
// # Querying
//
// Search returns the translations of an exact phrase:
//
//	d, err := dictionary.OpenFile("en-fr.dict.bin")
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//
//	translations, err := d.Search("good morning")
//	for _, t := range translations {
//		fmt.Printf("%s %.2f\n", t.Text, t.Frequency)
//		for _, ex := range t.Examples {
//			src, _ := ex.Source()
//			fmt.Println(src.Left, "["+src.Phrase+"]", src.Right)
//		}
//	}
//
// Autocomplete returns up to ten phrases starting with a prefix, best weight
// first.
//
// # Concurrency
//
// A Dictionary is safe for concurrent queries. Close must not race with
// queries; after Close every query returns errs.ErrClosed.
package dictionary
