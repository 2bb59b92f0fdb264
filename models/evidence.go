package models

import "io"

// EvidenceUpload describes an uploaded evidence file before it is accepted.
// FileName carries the client-declared name whose extension is checked
// against the image allow-list; Content is consumed exactly once when the
// file is persisted to the blob store.
type EvidenceUpload struct {
	// FileName is the original file name as declared by the client.
	FileName string

	// Content is the file body. Read fully on acceptance.
	Content io.Reader

	// Description is the optional user-supplied description of the file.
	Description string
}
