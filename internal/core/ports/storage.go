package ports

import "mime/multipart"

// FileStore persists uploaded files into the shared upload directory and
// maps them to the public paths stored in database rows.
type FileStore interface {
	// Save writes the upload under a collision-free name and returns the
	// public path (e.g. /uploads/1700000000000-a1b2c3d4.pdf).
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes the file backing a public path. Removing a path whose
	// file is already gone is not an error.
	Remove(publicPath string) error
}
