// Package classify maps family names to written languages and style tags
// using fixed keyword tables.
//
//	classify.DetectLanguage("Noto Sans Arabic") // "Arabic"
//	classify.DetectLanguage("Roboto")           // "English"
//	classify.DetectStyleTags("Fira Mono")       // ["Monospace"]
//
// Both functions are pure and total.
package classify
