// Package file gives the uploader and the pre-flight checks access to firmware images on disk.
package file

import (
	"fmt"
	"os"

	"tftp-router-flasher/internal/port"
)

// FirmwareStore reads firmware images from the local file system.
type FirmwareStore struct{}

var _ port.FileManager = (*FirmwareStore)(nil)

func NewFirmwareStore() *FirmwareStore {
	return &FirmwareStore{}
}

// ReadFile loads the whole image. Router images are a few tens of MiB at most.
func (s *FirmwareStore) ReadFile(path string) ([]byte, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read firmware image %s: %w", path, err)
	}
	return image, nil
}

// IsRegularFile reports whether path names an existing regular file, following symlinks.
// Directories and device nodes are rejected.
func (s *FirmwareStore) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
