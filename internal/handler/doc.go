// Package handler provides ready-made parser.Handler implementations:
// Default accumulates declarations, Logging writes an indented structured
// log of every event, Generate regenerates MOF text as declarations arrive,
// and Multi fans events out to several handlers.
package handler
