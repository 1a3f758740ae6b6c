// Package slug generates URL-safe slugs from arbitrary strings with Unicode normalization.
//
// This package converts text to web-friendly identifiers by normalizing diacritics, replacing
// special characters with separators, and offering configurable length limits and collision-resistant
// suffixes. It's designed for creating clean URLs, file names, and identifiers from user input.
//
// # Usage
//
// Basic slug generation:
//
//	slug := slug.Make("Hello, World!")
//	// Output: "hello-world"
//
//	slug2 := slug.Make("Café & Restaurant")
//	// Output: "cafe-restaurant"
//
// With options:
//
//	slug := slug.Make("Long article title here",
//		slug.MaxLength(20),
//		slug.WithSuffix(6),
//	)
//	// Output: "long-article-a7b2x9"
//
// Custom separator and case:
//
//	slug := slug.Make("Product Name",
//		slug.Separator("_"),
//		slug.Lowercase(false),
//	)
//	// Output: "Product_Name"
//
// Custom replacements handle domain-specific terms before normalization:
//
//	slug := slug.Make("C++ & Go",
//		slug.CustomReplace(map[string]string{"&": "and", "C++": "cpp"}),
//	)
//	// Output: "cpp-and-go"
//
// # Unicode Support
//
// Diacritics are folded to their ASCII base letters via NFD decomposition
// (é → e, ñ → n, ü → u), and a small replacement table covers letters that
// don't decompose (ß → ss, ø → o, æ → ae). Characters with no ASCII
// representation (CJK, most non-Latin scripts) become separators and are
// collapsed away.
//
// # Error Handling
//
// Make never returns errors and always produces valid output:
//   - Empty input returns empty string
//   - All-special-character input returns empty string or suffix-only
//   - Invalid options use sensible defaults
//   - crypto/rand failures fall back to a deterministic suffix
package slug
