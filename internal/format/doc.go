// Package format converts between INI value text and the typed values and
// byte encodings the plugin works with. Conversions are lenient where game
// scripts expect C behavior, and independent from the document model so the
// higher-level packages can decide when to apply them.
package format
