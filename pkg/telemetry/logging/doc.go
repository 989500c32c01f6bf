// Package logging provides structured logging for Mercator Callisto.
//
// It is a thin layer over log/slog: New builds a logger from the
// configuration's level, format (json or text), and source annotation
// settings. All components receive their logger explicitly; nothing in the
// repository logs through the slog default.
package logging
