// Package section defines the fixed-size structures of the dictionary file.
//
// A dictionary file is a single stream of records addressed by absolute byte
// offsets. Everything except the trailer is variable-sized and located through
// pointers, so the trailer is the only entry point:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Sentinel (1 byte, 0x00)                                 │
//	│  - Reserves offset 0 as the null pointer                │
//	├─────────────────────────────────────────────────────────┤
//	│ Source Corpus (variable)                                │
//	│  - Sentence bytes, a 0x00 byte, sentence offset table   │
//	├─────────────────────────────────────────────────────────┤
//	│ Target Corpus (variable)                                │
//	│  - Same layout as the source corpus                     │
//	├─────────────────────────────────────────────────────────┤
//	│ Phrase and Node Records (variable, interleaved)         │
//	│  - Written in build order, children before parents      │
//	├─────────────────────────────────────────────────────────┤
//	│ Trailer (24 bytes, fixed)                               │
//	│  - Root node, source corpus, target corpus pointers     │
//	└─────────────────────────────────────────────────────────┘
//
// # Trailer Format
//
//	Bytes  | Field          | Type   | Description
//	-------|----------------|--------|----------------------------------
//	0-7    | Root           | uint64 | Offset of the root trie node
//	8-15   | SourceCorpus   | uint64 | Offset of the source offset table
//	16-23  | TargetCorpus   | uint64 | Offset of the target offset table
//
// All integers are big-endian.
package section
