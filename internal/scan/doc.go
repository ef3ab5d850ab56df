// Package scan collects the file entries fed into the similarity ranker.
//
// Roots may be directories (walked recursively), regular files (included
// directly), or "-" (base names read from stdin). Directory walks apply the
// configured file-name pattern; explicit file arguments bypass it, since the
// user already named them. Unreadable subtrees are logged and skipped, but a
// root that does not exist is an input error.
package scan
