package filestorage

import "mime/multipart"

// FileStorageInterface is the contract for persisting uploaded roster files.
type FileStorageInterface interface {
	Save(fileHeader *multipart.FileHeader) (filePath string, err error)
}
