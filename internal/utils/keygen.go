package utils

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	base36         = "0123456789abcdefghijklmnopqrstuvwxyz"
	idRandomLength = 11
	slugMaxLength  = 50
	slugIDLength   = 6
)

// GenerateID returns an opaque record identifier: a random base36 part
// followed by the base36 unix-millisecond timestamp. Collisions are not
// checked against existing records.
// Example: k3j9x0a7q2mlxq4c1z8
func GenerateID() string {
	b := make([]byte, idRandomLength)
	_, _ = rand.Read(b)

	var sb strings.Builder
	sb.Grow(idRandomLength + 9)
	for _, v := range b {
		sb.WriteByte(base36[int(v)%len(base36)])
	}
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return sb.String()
}

// GenerateSlug derives a URL-safe slug from a title and appends the first
// six characters of id. Uniqueness comes from the id, not from the title.
// Example: "boAt Airdopes 141!" + "k3j9x0..." -> "boat-airdopes-141-k3j9x0"
func GenerateSlug(title, id string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsSpace(r):
			inSpace = true
			continue
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
		default:
			continue
		}
		if inSpace {
			sb.WriteByte('-')
			inSpace = false
		}
		sb.WriteRune(r)
	}
	if inSpace {
		sb.WriteByte('-')
	}

	slug := sb.String()
	if len(slug) > slugMaxLength {
		slug = slug[:slugMaxLength]
	}

	suffix := id
	if len(suffix) > slugIDLength {
		suffix = suffix[:slugIDLength]
	}
	return slug + "-" + suffix
}

// DealURL builds the public share URL of a deal: {origin}/deal/{slug}.
func DealURL(origin, slug string) string {
	return strings.TrimSuffix(origin, "/") + "/deal/" + slug
}
