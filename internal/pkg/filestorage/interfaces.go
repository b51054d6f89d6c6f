package filestorage

import "mime/multipart"

// FileStorage defines the interface for storing applicant documents.
// Implementations return a public URL for each stored file.
type FileStorage interface {
	// SaveFile stores a file in the root of the storage area
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath stores a file under a subdirectory (e.g. "resumes")
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously stored file, identified by its URL or path.
	// Deleting a missing file is not an error.
	DeleteFile(fileURL string) error
}
