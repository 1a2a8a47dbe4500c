package types

import "fmt"

// AttemptStatus is the outcome of a single host attempt.
type AttemptStatus int

const (
	// StatusUnreachable means the host did not answer its reachability probe.
	StatusUnreachable AttemptStatus = iota
	// StatusUploadFailed means the host was probed but the TFTP transfer failed.
	StatusUploadFailed
	// StatusSuccess means the firmware was transferred.
	StatusSuccess
)

func (s AttemptStatus) String() string {
	switch s {
	case StatusUnreachable:
		return "unreachable"
	case StatusUploadFailed:
		return "upload_failed"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("AttemptStatus(%d)", int(s))
	}
}

// AttemptResult is the tri-state result of trying one host.
type AttemptResult struct {
	Status AttemptStatus
	Host   string
	Reason string // underlying error text for StatusUploadFailed
}

// Unreachable builds the result for a host that failed its probe.
func Unreachable(host string) AttemptResult {
	return AttemptResult{Status: StatusUnreachable, Host: host}
}

// UploadFailed builds the result for a failed transfer, keeping the error text.
func UploadFailed(host string, err error) AttemptResult {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return AttemptResult{Status: StatusUploadFailed, Host: host, Reason: reason}
}

// Succeeded builds the result for a clean transfer.
func Succeeded(host string) AttemptResult {
	return AttemptResult{Status: StatusSuccess, Host: host}
}

// OK reports whether the attempt succeeded.
func (r AttemptResult) OK() bool {
	return r.Status == StatusSuccess
}

// Err maps the result onto the error taxonomy. It returns nil on success.
func (r AttemptResult) Err() error {
	switch r.Status {
	case StatusSuccess:
		return nil
	case StatusUnreachable:
		return fmt.Errorf("%s: %w", r.Host, ErrUnreachable)
	default:
		return fmt.Errorf("upload to %s: %w: %s", r.Host, ErrTransport, r.Reason)
	}
}
