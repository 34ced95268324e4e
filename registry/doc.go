// Package registry loads every dictionary model found in a blobstore.Store
// and answers queries by dictionary id.
//
// A model named "<id>.dict.bin" is opened in place; "<id>.dict.bin.zst",
// ".s2" and ".lz4" models are unpacked into memory. Models are loaded in
// parallel at startup and the set is fixed afterwards, so a Registry is safe
// for concurrent queries without locking.
//
// Search results have the JSON shape served to clients:
//
//	[{"translation": "bonjour", "frequency": 0.75, "examples": [
//	    {"srcLeftContext": "", "srcPhrase": "hello", "srcRightContext": " world",
//	     "trgLeftContext": "", "trgPhrase": "bonjour", "trgRightContext": " le monde"}]}]
package registry
