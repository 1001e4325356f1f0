package errors

import (
	stderr "errors"
	"fmt"
)

// ResolutionFault indicates that a binary lookup strategy failed unexpectedly.
// It never leaves the strategy chain; it is logged and treated as a miss.
type ResolutionFault struct {
	Strategy string
	Err      error
}

// Error is an implementation of the error interface.
func (f *ResolutionFault) Error() string {
	return fmt.Sprintf("strategy %q failed: %v", f.Strategy, f.Err)
}

// Unwrap returns the underlying failure.
func (f *ResolutionFault) Unwrap() error {
	return f.Err
}

// DownloadFault indicates that fetching or installing a release failed.
type DownloadFault struct {
	Version string
	URL     string
	Err     error
}

// Error is an implementation of the error interface.
func (f *DownloadFault) Error() string {
	if f.URL == "" {
		return fmt.Sprintf("downloading version %q: %v", f.Version, f.Err)
	}
	return fmt.Sprintf("downloading version %q from %s: %v", f.Version, f.URL, f.Err)
}

// Unwrap returns the underlying failure.
func (f *DownloadFault) Unwrap() error {
	return f.Err
}

// LifecycleFault records a collaborator failure during a lifecycle operation.
type LifecycleFault struct {
	Op  string
	Err error
}

// Error is an implementation of the error interface.
func (f *LifecycleFault) Error() string {
	return fmt.Sprintf("%s failed: %v", f.Op, f.Err)
}

// Unwrap returns the underlying failure.
func (f *LifecycleFault) Unwrap() error {
	return f.Err
}

// IsDownloadFault reports whether a DownloadFault is part of the error chain.
func IsDownloadFault(e error) bool {
	var df *DownloadFault
	return stderr.As(e, &df)
}
