// Package language provides language code normalization and mapping.
//
// All language-related conversions (ISO 639-2 codes, human-readable names,
// tag extraction) are consolidated here to avoid duplication between the
// reorder resolver and the CLI rendering code.
package language
