// Package record defines the value records stored in a dictionary file and
// their binary encoding.
//
// Records are written once by the build pipeline and never modified. Each
// Encode method appends the record to a codec.Writer and returns the offset of
// its first byte; parents store that offset as a pointer. Each Decode function
// reads a record at the position of a codec.Reader cursor.
//
// Layouts (all integers big-endian, see package codec):
//
//	Example:     sentenceID:i32 srcStart:i32 srcEnd:i32 trgStart:i32 trgEnd:i32
//	Translation: occurrences:i64 len:i32 text[len] count:i32 Example[count]
//	Phrase:      weight:i64 len:i32 text[len] count:i32 Translation[count]
//	Corpus:      sentence bytes..., 0x00, count:i32 offset:ptr[count]
//
// The corpus pointer addresses the count field; the sentence bytes precede it.
package record
