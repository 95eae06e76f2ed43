// Package driver runs the parser over files and directories.
//
// Every file gets its own parser.Parser and handler.Default; a directory is
// parsed by a bounded errgroup. Progress is reported per file and stage
// through a ProgressSink, and finished documents may be kept in a msgpack
// DiskCache keyed by content hash.
package driver
