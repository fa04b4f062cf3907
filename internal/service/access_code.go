package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"photostudio-backend/internal/database/models"
)

const (
	// AccessCodeLength is the fixed length of gallery access codes
	AccessCodeLength   = 6
	accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// AccessDecision is the outcome of resolving a viewer's access to a gallery
type AccessDecision string

const (
	AccessGranted AccessDecision = "granted"
	AccessDenied  AccessDecision = "denied"
)

// GenerateAccessCode returns a random code of AccessCodeLength uppercase
// alphanumerics. Uniqueness is checked when the code is stored, not here.
func GenerateAccessCode() (string, error) {
	var b strings.Builder
	b.Grow(AccessCodeLength)
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	for i := 0; i < AccessCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate access code: %w", err)
		}
		b.WriteByte(accessCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// ResolveAccess decides whether a viewer presenting suppliedCode may see gallery.
// Public galleries admit everyone; private ones only an exact, case-sensitive
// match of a set code.
func ResolveAccess(gallery *models.Gallery, suppliedCode *string) AccessDecision {
	if gallery.IsPublic {
		return AccessGranted
	}
	if gallery.AccessCode == nil || *gallery.AccessCode == "" || suppliedCode == nil {
		return AccessDenied
	}
	if *suppliedCode == *gallery.AccessCode {
		return AccessGranted
	}
	return AccessDenied
}

// BuildShareLink returns {base}/gallery/{id}, with ?code= appended when the gallery has a code
func BuildShareLink(base string, gallery *models.Gallery) string {
	link := strings.TrimRight(base, "/") + "/gallery/" + gallery.ID.String()
	if gallery.AccessCode != nil && *gallery.AccessCode != "" {
		link += "?" + url.Values{"code": {*gallery.AccessCode}}.Encode()
	}
	return link
}
