// Package uploader pushes a firmware image to a router over TFTP.
package uploader

import (
	"bytes"
	"context"
	"path/filepath"

	"tftp-router-flasher/internal/pkg/logging"
	"tftp-router-flasher/internal/port"
	"tftp-router-flasher/internal/types"

	"github.com/sirupsen/logrus"
)

// Uploader implements the FirmwareUploader port. It makes exactly one transfer per call.
type Uploader struct {
	client  port.TFTPClient
	fileMgr port.FileManager
}

// Ensure Uploader implements the FirmwareUploader port
var _ port.FirmwareUploader = (*Uploader)(nil)

// NewUploader creates a new firmware uploader.
func NewUploader(client port.TFTPClient, fileMgr port.FileManager) *Uploader {
	return &Uploader{client: client, fileMgr: fileMgr}
}

// Upload sends the firmware at req.FirmwarePath to req.TargetHost under its base name.
// Any error, including reading the local file, yields an UploadFailed result.
func (u *Uploader) Upload(ctx context.Context, req types.UploadRequest) types.AttemptResult {
	remoteName := filepath.Base(req.FirmwarePath)
	logger := logging.WithComponentAndHost("tftp", req.TargetHost).WithFields(logrus.Fields{
		"file":    remoteName,
		"timeout": req.Timeout().String(),
	})

	logger.Info("Uploading firmware")

	data, err := u.fileMgr.ReadFile(req.FirmwarePath)
	if err != nil {
		logger.WithError(err).Error("TFTP upload failed")
		return types.UploadFailed(req.TargetHost, err)
	}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout())
	defer cancel()

	if err := u.client.Send(ctx, req.TargetHost, remoteName, bytes.NewReader(data)); err != nil {
		logger.WithError(err).Error("TFTP upload failed")
		return types.UploadFailed(req.TargetHost, err)
	}

	logger.WithField("bytes", len(data)).Info("Upload complete")
	return types.Succeeded(req.TargetHost)
}
