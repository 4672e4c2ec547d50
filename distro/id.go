package distro

// ID classifies a Linux distribution. The known distributions are the
// package-level values below; anything else is represented by Other, which
// carries the unrecognized os-release token verbatim. IDs are comparable
// values: two Other IDs are equal exactly when their payload strings are equal.
type ID struct {
	kind  kind
	other string
}

type kind uint8

const (
	kindOther kind = iota
	kindArch
	kindDebian
	kindUbuntu
	kindMint
	kindRHEL
	kindFedora
	kindOpenSUSE
	kindGentoo
	kindNixOS
)

// The set of recognized Linux distributions.
var (
	Arch     = ID{kind: kindArch}
	Debian   = ID{kind: kindDebian}
	Ubuntu   = ID{kind: kindUbuntu}
	Mint     = ID{kind: kindMint}
	RHEL     = ID{kind: kindRHEL}
	Fedora   = ID{kind: kindFedora}
	OpenSUSE = ID{kind: kindOpenSUSE}
	Gentoo   = ID{kind: kindGentoo}
	NixOS    = ID{kind: kindNixOS}
)

// All contains the recognized distribution IDs.
var All = []ID{
	Arch,
	Debian,
	Ubuntu,
	Mint,
	RHEL,
	Fedora,
	OpenSUSE,
	Gentoo,
	NixOS,
}

// Other returns the ID for a distribution outside the recognized set,
// carrying the given os-release token.
func Other(token string) ID {
	return ID{kind: kindOther, other: token}
}

// IDMapping connects an os-release ID token like "ubuntu" to a distribution
// ID. Tokens are matched exactly; os-release files use lower-case tokens.
var IDMapping = map[string]ID{
	"arch":      Arch,
	"debian":    Debian,
	"ubuntu":    Ubuntu,
	"mint":      Mint,
	"linuxmint": Mint,
	"rhel":      RHEL,
	"fedora":    Fedora,
	"suse":      OpenSUSE,
	"opensuse":  OpenSUSE,
	// os-release files for Tumbleweed spell this token with a hyphen
	// ("opensuse-tumbleweed"); only the underscore form is recognized, the
	// hyphenated one maps to Other.
	"opensuse_tumbleweed": OpenSUSE,
	"gentoo":              Gentoo,
	"nixos":               NixOS,
}

// FromString maps an os-release ID token to a distribution ID. It never
// fails: unrecognized tokens yield Other carrying the token verbatim.
func FromString(token string) ID {
	if id, ok := IDMapping[token]; ok {
		return id
	}
	return Other(token)
}

// String returns the canonical os-release token for the distribution. For
// Other it returns the stored token unchanged.
func (i ID) String() string {
	switch i.kind {
	case kindArch:
		return "arch"
	case kindDebian:
		return "debian"
	case kindUbuntu:
		return "ubuntu"
	case kindMint:
		return "linuxmint"
	case kindRHEL:
		return "rhel"
	case kindFedora:
		return "fedora"
	case kindOpenSUSE:
		return "opensuse"
	case kindGentoo:
		return "gentoo"
	case kindNixOS:
		return "nixos"
	default:
		return i.other
	}
}
