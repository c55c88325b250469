package entity

import "time"

// Document kinds with their decoded-size caps in bytes. The cap is always
// re-checked server-side against the decoded length, never against a
// client-reported size.
const (
	DocumentKindDocument = "document"
	DocumentKindImage    = "image"
	DocumentKindCAD      = "cad"
)

// MaxDocumentSize returns the byte cap for a document kind, or 0 for an
// unknown kind.
func MaxDocumentSize(kind string) int {
	switch kind {
	case DocumentKindDocument:
		return 5 * 1024 * 1024
	case DocumentKindImage:
		return 10 * 1024 * 1024
	case DocumentKindCAD:
		return 50 * 1024 * 1024
	}
	return 0
}

// Document is an uploaded file reference tied to a company. Content is
// stored behind an opaque StorageRef, not inline.
type Document struct {
	ID          string
	CompanyID   string
	UploadedBy  string // user id
	Kind        string // document, image, cad
	FileName    string
	ContentType string
	SizeBytes   int
	StorageRef  string // opaque reference, no real object storage backing
	CreatedAt   time.Time
}
