// Package osrelease reads the os-release file that identifies the running
// distribution, as documented at
// https://www.freedesktop.org/software/systemd/man/os-release.html
//
// Only the NAME, ID and ID_LIKE entries are of interest here, and values are
// captured exactly as written: the format's quoting and escaping rules are
// deliberately not applied.
package osrelease

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/osinspect/whatadistro/internal/log"
)

// Path is the standard location of the os-release file.
const Path = "/etc/os-release"

// Parse failure modes, for callers that want to tell them apart. Identify
// folds all of them into a nil result.
var (
	ErrNoID   = errors.New("osrelease: no ID entry")
	ErrNoName = errors.New("osrelease: no NAME entry")
)

// Release holds the fields captured from an os-release file.
type Release struct {
	// Name is the NAME entry, a human readable distribution name. Kept
	// verbatim, surrounding quotes included.
	Name string
	// ID is the ID entry, a lower-case identifier token.
	ID string
	// IDLike is the ID_LIKE entry split on whitespace, naming the
	// distributions this one is derived from. Nil when the entry is absent.
	IDLike []string
}

// Parse extracts the NAME, ID and ID_LIKE entries from the os-release
// contents on r. All other lines are ignored, comments and blank lines
// included. When an entry repeats, the last occurrence wins. A Release is
// returned only if both an ID and a NAME entry were present; an entry with
// an empty value still counts as present.
func Parse(r io.Reader) (*Release, error) {
	var rel Release
	var haveID, haveName bool

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		switch {
		case strings.HasPrefix(line, "ID="):
			rel.ID = strings.TrimPrefix(line, "ID=")
			haveID = true
		case strings.HasPrefix(line, "NAME="):
			rel.Name = strings.TrimPrefix(line, "NAME=")
			haveName = true
		case strings.HasPrefix(line, "ID_LIKE="):
			rel.IDLike = strings.Fields(strings.TrimPrefix(line, "ID_LIKE="))
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("osrelease: reading: %w", err)
	}

	if !haveID {
		return nil, ErrNoID
	}
	if !haveName {
		return nil, ErrNoName
	}
	return &rel, nil
}

// Identify reads the os-release file at Path and reports the captured
// fields. It returns nil when the file cannot be read or does not carry
// both an ID and a NAME entry; identification is best effort and the two
// cases are not distinguished. Every call performs an independent read.
func Identify() *Release {
	return IdentifyFrom(afero.NewOsFs(), Path)
}

// IdentifyFrom is Identify against an arbitrary filesystem and path.
func IdentifyFrom(fsys afero.Fs, path string) *Release {
	f, err := fsys.Open(path)
	if err != nil {
		log.WithFields("path", path, "error", err).Debug("unable to open os-release file")
		return nil
	}
	defer f.Close()

	rel, err := Parse(f)
	if err != nil {
		log.WithFields("path", path, "error", err).Debug("unable to parse os-release file")
		return nil
	}
	return rel
}
