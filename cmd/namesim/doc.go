// Package main hosts the namesim CLI entrypoint and command graph.
//
// The root command scans the given roots, ranks file-name pairs by cosine
// similarity, and renders the result as TSV, a table, or JSON. Subcommands
// cover configuration scaffolding and version output. Configuration
// resolution, logging setup, and trace export wiring live here so the
// internal packages stay reusable and free of terminal concerns.
package main
