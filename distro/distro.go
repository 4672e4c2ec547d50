// Package distro models Linux distributions: a closed set of distribution
// IDs with a curated notion of family similarity, and the Distro value
// describing the distribution an os-release file names.
package distro

import (
	"fmt"

	"github.com/osinspect/whatadistro/internal"
	"github.com/osinspect/whatadistro/osrelease"
)

// Distro represents the Linux distribution named by an os-release file.
type Distro struct {
	name       string
	id         ID
	similarIDs *internal.OrderedSet[ID]
}

// New creates a Distro populated with the given values. Duplicate
// similarIDs collapse, first occurrence keeping its position.
func New(name string, id ID, similarIDs ...ID) *Distro {
	return &Distro{
		name:       name,
		id:         id,
		similarIDs: internal.NewOrderedSet(similarIDs...),
	}
}

// FromRelease builds a Distro from a parsed os-release file, converting each
// ID_LIKE token to a distribution ID. It returns nil when release is nil, so
// it chains off a failed read.
func FromRelease(release *osrelease.Release) *Distro {
	if release == nil {
		return nil
	}
	similar := make([]ID, 0, len(release.IDLike))
	for _, token := range release.IDLike {
		similar = append(similar, FromString(token))
	}
	return New(release.Name, FromString(release.ID), similar...)
}

// Name returns the distribution's display name (the NAME entry), verbatim.
func (d *Distro) Name() string {
	return d.name
}

// ID returns the distribution's ID (the ID entry).
func (d *Distro) ID() ID {
	return d.id
}

// SimilarIDs returns the IDs the distribution declares itself similar to
// (the ID_LIKE entry), deduplicated, in file order.
func (d *Distro) SimilarIDs() []ID {
	return d.similarIDs.ToSlice()
}

// IsSimilar reports whether other is declared similar by the os-release file
// or shares a curated family with the distribution's own ID. Either source
// alone is sufficient.
func (d *Distro) IsSimilar(other ID) bool {
	return d.similarIDs.Contains(other) || d.id.IsSimilar(other)
}

// String returns a human-friendly representation of the distribution.
func (d *Distro) String() string {
	return fmt.Sprintf("%s (%s)", d.name, d.id)
}
