package distro

import "slices"

// ListSimilar returns the curated family of distributions i belongs to,
// anchored on i itself: the result always includes i, and for family members
// i comes first. Debian, Ubuntu and Mint form one family; RHEL, Fedora and
// OpenSUSE form another; everything else is a family of one. The slice is
// freshly allocated on every call.
func (i ID) ListSimilar() []ID {
	switch i.kind {
	case kindDebian:
		return []ID{Debian, Ubuntu, Mint}
	case kindUbuntu:
		return []ID{Ubuntu, Debian, Mint}
	case kindMint:
		return []ID{Mint, Debian, Ubuntu}
	case kindRHEL:
		return []ID{RHEL, Fedora, OpenSUSE}
	case kindFedora:
		return []ID{Fedora, RHEL, OpenSUSE}
	case kindOpenSUSE:
		return []ID{OpenSUSE, Fedora, RHEL}
	default:
		return []ID{i}
	}
}

// IsSimilar reports whether other belongs to the same curated family as i.
// Every ID is similar to itself. Raw os-release tokens convert via
// FromString before comparison.
func (i ID) IsSimilar(other ID) bool {
	return slices.Contains(i.ListSimilar(), other)
}
