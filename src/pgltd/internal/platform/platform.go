// Package platform describes the pglt artifacts published for each operating system and architecture.
package platform

import (
	"runtime"
)

const (
	// NpmPackageName is the name under which pglt is published on npm.
	NpmPackageName = "@pglt/pglt"

	_binaryBaseName = "pglt"
)

// Platform names the artifacts that apply to a single GOOS/GOARCH pair.
type Platform struct {
	GOOS   string
	GOARCH string
}

// Current returns the Platform of the running process.
func Current() Platform {
	return Platform{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}

var _packageNames = map[string]map[string]string{
	"windows": {
		"amd64": "pglt-x86_64-windows-msvc",
		"arm64": "pglt-aarch64-windows-msvc",
	},
	"darwin": {
		"amd64": "pglt-x86_64-apple-darwin",
		"arm64": "pglt-aarch64-apple-darwin",
	},
	"linux": {
		"amd64": "pglt-x86_64-linux-gnu",
		"arm64": "pglt-aarch64-linux-gnu",
	},
}

var _osTriples = map[string]string{
	"darwin":  "apple-darwin",
	"linux":   "unknown-linux-gnu",
	"windows": "pc-windows-msvc",
}

var _archTriples = map[string]string{
	"arm64": "aarch64",
	"amd64": "x86_64",
}

// BinaryName is the file name of the language server executable.
func (p Platform) BinaryName() string {
	if p.GOOS == "windows" {
		return _binaryBaseName + ".exe"
	}
	return _binaryBaseName
}

// NodePackageName is the npm package carrying the binary for this platform, or "" if none is published.
func (p Platform) NodePackageName() string {
	return _packageNames[p.GOOS][p.GOARCH]
}

// ReleasedAssetName is the name of the release asset for this platform, or "" if none is published.
func (p Platform) ReleasedAssetName() string {
	if !p.Supported() {
		return ""
	}
	name := _binaryBaseName + "_" + _archTriples[p.GOARCH] + "-" + _osTriples[p.GOOS]
	if p.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// Supported reports whether release assets are published for this platform.
func (p Platform) Supported() bool {
	_, os := _osTriples[p.GOOS]
	_, arch := _archTriples[p.GOARCH]
	return os && arch
}

// EnforcesExecutableBit reports whether downloaded binaries need the executable permission bit.
func (p Platform) EnforcesExecutableBit() bool {
	return p.GOOS != "windows"
}
