//go:build unit

package uploader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"tftp-router-flasher/internal/mock"
	"tftp-router-flasher/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploader_Upload(t *testing.T) {
	req := types.UploadRequest{
		TargetHost:     "192.168.1.1",
		FirmwarePath:   "/path/to/firmware.bin",
		TimeoutSeconds: 120,
	}
	firmware := []byte("fake firmware content")

	newUploader := func(t *testing.T) (*Uploader, *mock.MockTFTPClient, *mock.MockFileManager) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockTFTPClient(ctrl)
		fileMgr := mock.NewMockFileManager(ctrl)
		return NewUploader(client, fileMgr), client, fileMgr
	}

	t.Run("Success", func(t *testing.T) {
		u, client, fileMgr := newUploader(t)

		fileMgr.EXPECT().ReadFile("/path/to/firmware.bin").Return(firmware, nil)
		client.EXPECT().
			Send(gomock.Any(), "192.168.1.1", "firmware.bin", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, src io.Reader) error {
				deadline, ok := ctx.Deadline()
				require.True(t, ok, "transfer must be bounded by the timeout")
				assert.WithinDuration(t, time.Now().Add(120*time.Second), deadline, 5*time.Second)

				sent, err := io.ReadAll(src)
				require.NoError(t, err)
				assert.Equal(t, firmware, sent)
				return nil
			})

		result := u.Upload(context.Background(), req)
		assert.True(t, result.OK())
		assert.Equal(t, types.Succeeded("192.168.1.1"), result)
		assert.NoError(t, result.Err())
	})

	t.Run("TransferError", func(t *testing.T) {
		u, client, fileMgr := newUploader(t)

		fileMgr.EXPECT().ReadFile(gomock.Any()).Return(firmware, nil)
		client.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("Connection failed")).Times(1)

		result := u.Upload(context.Background(), req)
		assert.Equal(t, types.StatusUploadFailed, result.Status)
		assert.Equal(t, "Connection failed", result.Reason)
		assert.ErrorIs(t, result.Err(), types.ErrTransport)
		assert.Contains(t, result.Err().Error(), "Connection failed")
	})

	t.Run("TimeoutExpires", func(t *testing.T) {
		u, client, fileMgr := newUploader(t)
		short := req
		short.TimeoutSeconds = 0

		fileMgr.EXPECT().ReadFile(gomock.Any()).Return(firmware, nil)
		client.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, _ io.Reader) error {
				<-ctx.Done()
				return ctx.Err()
			})

		result := u.Upload(context.Background(), short)
		assert.Equal(t, types.StatusUploadFailed, result.Status)
		assert.Contains(t, result.Reason, "deadline exceeded")
	})

	t.Run("UnreadableFirmware", func(t *testing.T) {
		u, client, fileMgr := newUploader(t)

		fileMgr.EXPECT().ReadFile("/path/to/firmware.bin").Return(nil, errors.New("failed to read file /path/to/firmware.bin: permission denied"))
		client.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result := u.Upload(context.Background(), req)
		assert.Equal(t, types.StatusUploadFailed, result.Status)
		assert.Contains(t, result.Reason, "permission denied")
	})
}

func TestUploader_RemoteNameIsBaseName(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockTFTPClient(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)
	u := NewUploader(client, fileMgr)

	fileMgr.EXPECT().ReadFile(gomock.Any()).Return([]byte{1, 2, 3}, nil)
	client.EXPECT().Send(gomock.Any(), "10.0.0.1", "RT-AX58U_3.0.0.4.trx", gomock.AssignableToTypeOf(&bytes.Reader{})).Return(nil)

	result := u.Upload(context.Background(), types.UploadRequest{
		TargetHost:     "10.0.0.1",
		FirmwarePath:   "../images/asus/RT-AX58U_3.0.0.4.trx",
		TimeoutSeconds: 5,
	})
	assert.True(t, result.OK())
}
