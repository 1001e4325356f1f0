package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrNilSession reports an attempt to register a nil session.
	ErrNilSession = New("can't save nil session")
	// ErrUnsupportedPlatform reports that no artifacts are published for the running platform.
	ErrUnsupportedPlatform = New("current platform is not supported")
	// ErrInvalidManifest reports a package.json that is not valid JSON.
	ErrInvalidManifest = New("invalid package manifest")
)
