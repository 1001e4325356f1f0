// Package entity contains the domain types shared across pgltd.
package entity

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
)

// BinaryLocation is an absolute filesystem path to a language server executable.
type BinaryLocation string

// String implements fmt.Stringer.
func (b BinaryLocation) String() string {
	return string(b)
}

// WorkspaceFolder is a named root folder opened in the editor.
type WorkspaceFolder struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path" json:"path"`
}

// Project is a workspace root paired with a discovered configuration file.
type Project struct {
	Folder     *WorkspaceFolder `json:"folder,omitempty" zap:"folder"`
	Root       string           `json:"root" zap:"root"`
	ConfigPath string           `json:"configPath" zap:"configPath"`
}

// ProjectKey identifies a project in the session registry.
type ProjectKey struct {
	Root   string
	Folder string
}

// Key returns the identity of the project.
func (p *Project) Key() ProjectKey {
	k := ProjectKey{Root: p.Root}
	if p.Folder != nil {
		k.Folder = p.Folder.Name
	}
	return k
}

// Session is a running language server client bound either to a single Project or to the whole editor.
type Session interface {
	ID() uuid.UUID
	// Project returns nil for the global session.
	Project() *Project
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	NotifyConfigurationChange(ctx context.Context) error
	ServerVersion() string
}

// DownloadedVersion is the record of a binary installed by the downloader.
type DownloadedVersion struct {
	Version string         `json:"version"`
	BinPath BinaryLocation `json:"binPath"`
}

// Release describes a published release of the language server.
type Release struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
}

// OperatingMode describes how the editor was opened.
type OperatingMode string

const (
	// OperatingModeSingleFile is used when no workspace folder is open.
	OperatingModeSingleFile OperatingMode = "single_file"
	// OperatingModeSingleRoot is used with exactly one workspace folder.
	OperatingModeSingleRoot OperatingMode = "single_root"
	// OperatingModeMultiRoot is used with more than one workspace folder.
	OperatingModeMultiRoot OperatingMode = "multi_root"
)

// OperatingModeFor returns the operating mode for the given workspace folders.
func OperatingModeFor(folders []WorkspaceFolder) OperatingMode {
	switch {
	case len(folders) == 0:
		return OperatingModeSingleFile
	case len(folders) > 1:
		return OperatingModeMultiRoot
	default:
		return OperatingModeSingleRoot
	}
}
