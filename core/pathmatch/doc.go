// Package pathmatch compares route patterns against request paths.
//
// Patterns and paths are both split on "/" without trimming, so the leading
// slash produces an empty first segment and trailing slashes are significant:
//
//	pathmatch.Split("/users/42")  // ["", "users", "42"]
//	pathmatch.Split("/users/42/") // ["", "users", "42", ""]
//
// A pattern segment starting with ":" is a placeholder. It binds the request
// segment at the same position. Every other segment must match literally,
// and pattern and path must have the same number of segments:
//
//	params, ok := pathmatch.Match(
//		pathmatch.Split("/users/:id"),
//		pathmatch.Split("/users/42"),
//	)
//	// params == map[string]string{"id": "42"}, ok == true
//
// Query values are extracted independently of the pattern with Query, which
// flattens url.Values so that the last occurrence of a repeated key wins.
//
// All functions are pure and safe for concurrent use.
package pathmatch
