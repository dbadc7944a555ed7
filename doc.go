// Package watsonspec implements the Ingredient binary document format: a
// recursive, self-describing record encoding in which every value begins
// with a one-byte type-marker, an optional inline length, and a payload.
//
// Components:
//   - wire: pure functions over the marker byte (SizeClass/Kind) and the
//     stream framing used to read/write one record at a time.
//   - Ingredient: the primitive carrier, borrowed (zero-copy view) or owned.
//   - Scalars: Null, True/False, Float, Int32, Int64, UInt64, String, Flags.
//   - Composites: Container, Library (string sequence), Map (uint32-keyed),
//     Header (string-keyed), Compressed (Zip: Snappy-compressed inner
//     record), Binary (opaque blob with a marshal-hint, see the codec
//     package).
//   - Recipe/Glossary: step-path navigation over a top-level Container,
//     translating names to indices via the first Library found.
//
// Lookup and coercion failures are never errors: they produce the shared
// Null sentinel or a zero-valued default. Only structural decode failures
// (truncated input, unknown kind, malformed composite framing) return a
// *DecodeError.
//
// Keys owned by the optional document cache:
//
//	doc:<sha256-hex>  - the raw bytes of a top-level document, keyed by content hash
package watsonspec
