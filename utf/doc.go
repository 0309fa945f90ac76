// Package utf implements bidirectional transcoding iterators between UTF-8,
// UTF-16, and UTF-32 code-unit sequences.
//
// # Architecture
//
// Decoding a source encoding into code points is handled by the package-level
// Decode* functions, which implement the restricted continuation-byte ranges
// of Unicode 9 §3.9 Table 3-7 and the "maximal subpart of an ill-formed
// subsequence" replacement rule of Table 3-8. Encoding a code point into a
// destination encoding is handled by the Append* functions.
//
// On top of those primitives, the iterator types (Iter8To16, Iter8To32,
// Iter16To8, Iter16To32, Iter32To8, Iter32To16) compose decode-then-encode
// into a single bidirectional cursor over a source buffer, caching the
// current code point's expanded destination units in a small internal
// buffer the way the source library's adapters do.
//
// # Error handling
//
// Every decode operation takes a Mode. ModeReplacement (the default) never
// fails: malformed input is replaced with U+FFFD one maximal subpart at a
// time and decoding resumes at the first unconsumed byte. ModeStrict
// returns InvalidEncoding for any ill-formed sequence, any lone surrogate,
// any reserved noncharacter, or any value above U+10FFFF.
package utf
