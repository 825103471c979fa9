// Package fingerprint derives the tamper-evidence digest stored with
// every submission. The canonical serialization fixes field order and
// number formatting, so the same logical submission always hashes to
// the same 64-char hex string.
package fingerprint

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"time"
)

// HexLen is the length of an encoded digest.
const HexLen = 64

// Payload holds the fields covered by the digest. Amounts are KES minor
// units so formatting is plain base-10 integers; the date is truncated
// to its calendar day in UTC.
type Payload struct {
	InsurerID        string
	CapitalCents     int64
	LiabilitiesCents int64
	SubmissionDate   time.Time
}

func canonical(p Payload) string {
	return p.InsurerID + "|" +
		strconv.FormatInt(p.CapitalCents, 10) + "|" +
		strconv.FormatInt(p.LiabilitiesCents, 10) + "|" +
		p.SubmissionDate.UTC().Format("2006-01-02")
}

// Sum returns the sha256 hex digest of the canonical payload.
func Sum(p Payload) string {
	h := sha256.Sum256([]byte(canonical(p)))
	return hex.EncodeToString(h[:])
}

// Verify recomputes the digest and compares it to hash in constant time.
func Verify(p Payload, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(Sum(p)), []byte(hash)) == 1
}
