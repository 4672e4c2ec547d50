// Package whatadistro identifies the Linux distribution the current process
// is running on by reading /etc/os-release, and classifies it against a
// small curated set of distribution families.
package whatadistro

import (
	"github.com/anchore/go-logger"

	"github.com/osinspect/whatadistro/distro"
	"github.com/osinspect/whatadistro/internal/log"
	"github.com/osinspect/whatadistro/osrelease"
)

// Identify reports the distribution named by /etc/os-release. It returns
// nil when the file cannot be read or does not carry both an ID and a NAME
// entry.
//
//	if d := whatadistro.Identify(); d != nil {
//		fmt.Printf("running on %s, arch-based: %v\n", d.Name(), d.IsSimilar(distro.Arch))
//	}
func Identify() *distro.Distro {
	return distro.FromRelease(osrelease.Identify())
}

// SetLogger installs the logger used by the library. Nothing is logged
// unless one is set.
func SetLogger(l logger.Logger) {
	log.Set(l)
}
