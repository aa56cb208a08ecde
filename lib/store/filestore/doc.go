// Package filestore implements a persistent preference store. State lives
// in memory and is written through to a single snapshot file on every
// mutation, so the file always reflects the last completed write. The
// snapshot starts with a magic header and format version, followed by the
// payload of the configured codec.
package filestore
