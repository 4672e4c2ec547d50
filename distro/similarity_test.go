package distro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListSimilar(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want []ID
	}{
		{
			name: "arch stands alone",
			id:   Arch,
			want: []ID{Arch},
		},
		{
			name: "debian anchors its family",
			id:   Debian,
			want: []ID{Debian, Ubuntu, Mint},
		},
		{
			name: "ubuntu anchors its family",
			id:   Ubuntu,
			want: []ID{Ubuntu, Debian, Mint},
		},
		{
			name: "mint anchors its family",
			id:   Mint,
			want: []ID{Mint, Debian, Ubuntu},
		},
		{
			name: "rhel anchors its family",
			id:   RHEL,
			want: []ID{RHEL, Fedora, OpenSUSE},
		},
		{
			name: "fedora anchors its family",
			id:   Fedora,
			want: []ID{Fedora, RHEL, OpenSUSE},
		},
		{
			name: "opensuse anchors its family",
			id:   OpenSUSE,
			want: []ID{OpenSUSE, Fedora, RHEL},
		},
		{
			name: "gentoo stands alone",
			id:   Gentoo,
			want: []ID{Gentoo},
		},
		{
			name: "nixos stands alone",
			id:   NixOS,
			want: []ID{NixOS},
		},
		{
			name: "other stands alone",
			id:   Other("slackware"),
			want: []ID{Other("slackware")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.ListSimilar())
		})
	}
}

func TestListSimilarIncludesSelf(t *testing.T) {
	ids := append([]ID{Other("slackware"), Other("")}, All...)
	for _, id := range ids {
		assert.Containsf(t, id.ListSimilar(), id, "%s missing from its own family", id)
	}
}

func TestIsSimilarFamilies(t *testing.T) {
	debianFamily := []ID{Debian, Ubuntu, Mint}
	rhelFamily := []ID{RHEL, Fedora, OpenSUSE}

	// pairwise within a family
	for _, a := range debianFamily {
		for _, b := range debianFamily {
			assert.Truef(t, a.IsSimilar(b), "%s should be similar to %s", a, b)
		}
	}
	for _, a := range rhelFamily {
		for _, b := range rhelFamily {
			assert.Truef(t, a.IsSimilar(b), "%s should be similar to %s", a, b)
		}
	}

	// never across families
	for _, a := range debianFamily {
		for _, b := range rhelFamily {
			assert.Falsef(t, a.IsSimilar(b), "%s should not be similar to %s", a, b)
			assert.Falsef(t, b.IsSimilar(a), "%s should not be similar to %s", b, a)
		}
	}

	// singleton families are only similar to themselves
	for _, a := range []ID{Arch, Gentoo, NixOS} {
		for _, b := range All {
			assert.Equal(t, a == b, a.IsSimilar(b))
		}
	}
}

func TestOtherIsSimilarOnlyToItself(t *testing.T) {
	slackware := Other("slackware")

	assert.True(t, slackware.IsSimilar(FromString("slackware")))
	assert.False(t, slackware.IsSimilar(FromString("arch")))
	assert.False(t, Arch.IsSimilar(slackware))
}
