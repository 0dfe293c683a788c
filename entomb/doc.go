// Package entomb serializes filled containers into flat snapshot files and
// reconstructs read access over those bytes without copying them back out.
//
// Entombing writes a container's backing buffers into a checksummed,
// versioned snapshot layout. Exhuming maps the snapshot (from disk or a blob
// store) and reinterprets the sections in place, so a multi-gigabyte snapshot
// opens in constant time and reads borrow directly from the mapping.
//
// Store couples the two with a blobstore backend, optional write throttling
// and structured logging.
package entomb
