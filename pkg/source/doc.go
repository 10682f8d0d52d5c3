// Package source exposes the contracts for locating puzzle text and
// dictionaries: where the bytes live (file, fs.FS, URL, stdin, inline) and the
// Loader that fetches them. Implementations live under internal/source.
package source
