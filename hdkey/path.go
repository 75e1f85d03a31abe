package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mogwai-project/mogwai-node/chaincfg"
	"github.com/mogwai-project/mogwai-node/config"
)

// Path is a list of child indices, relative to the key it is applied to.
type Path []uint32

// ParsePath parses paths like "m/44'/5'/0'/0/7". Hardened indices are marked with ',
// h or H. The m (or M) root is optional; "m" alone is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	parts := strings.Split(s, "/")
	if parts[0] == "m" || parts[0] == "M" {
		parts = parts[1:]
	}

	p := make(Path, 0, len(parts))
	for _, part := range parts {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H")
		if hardened {
			part = part[:len(part)-1]
		}

		n, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad index %q", ErrInvalidPath, s, part)
		}

		i := uint32(n)
		if hardened {
			i += HARDENED_KEY_START
		}
		p = append(p, i)
	}
	if len(p) > MAX_DEPTH {
		return nil, fmt.Errorf("%w: %q", ErrDepthOverflow, s)
	}
	return p, nil
}

// String formats p with the m root and ' hardened markers.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, i := range p {
		b.WriteByte('/')
		if i >= HARDENED_KEY_START {
			b.WriteString(strconv.FormatUint(uint64(i-HARDENED_KEY_START), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(i), 10))
		}
	}
	return b.String()
}

// Hardened returns the hardened index i'.
func Hardened(i uint32) uint32 {
	return i | HARDENED_KEY_START
}

// BIP44AccountPath returns m/44'/coin'/account' for the network's coin type.
func BIP44AccountPath(params *chaincfg.Params, account uint32) Path {
	return Path{
		Hardened(config.BIP44_PURPOSE),
		Hardened(params.HDCoinType),
		Hardened(account),
	}
}

// BIP44Path returns m/44'/coin'/account'/change/index. change is 0 for receiving and
// 1 for change addresses.
func BIP44Path(params *chaincfg.Params, account, change, index uint32) Path {
	return append(BIP44AccountPath(params, account), change, index)
}
