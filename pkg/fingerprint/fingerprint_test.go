package fingerprint

import (
	"regexp"
	"testing"
	"time"
)

var reHex64 = regexp.MustCompile(`^[a-f0-9]{64}$`)

func basePayload() Payload {
	return Payload{
		InsurerID:        "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		CapitalCents:     60_000_000_000, // 600,000,000.00 KES
		LiabilitiesCents: 40_000_000_000,
		SubmissionDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestSum_StableAndWellFormed(t *testing.T) {
	p := basePayload()

	first := Sum(p)
	if !reHex64.MatchString(first) {
		t.Fatalf("digest not 64-char lowercase hex: %q", first)
	}
	for i := 0; i < 10; i++ {
		if got := Sum(p); got != first {
			t.Fatalf("digest changed across calls: %q vs %q", got, first)
		}
	}
}

func TestSum_SensitiveToEveryField(t *testing.T) {
	base := Sum(basePayload())

	tests := []struct {
		name   string
		mutate func(*Payload)
	}{
		{"insurer", func(p *Payload) { p.InsurerID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" }},
		{"capital", func(p *Payload) { p.CapitalCents++ }},
		{"liabilities", func(p *Payload) { p.LiabilitiesCents-- }},
		{"date", func(p *Payload) { p.SubmissionDate = p.SubmissionDate.AddDate(0, 0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := basePayload()
			tt.mutate(&p)
			if got := Sum(p); got == base {
				t.Fatalf("digest unchanged after mutating %s", tt.name)
			}
		})
	}
}

func TestSum_DateNormalizedToUTCDay(t *testing.T) {
	p := basePayload()
	q := p
	// Same calendar day in UTC, carried with a different wall clock.
	q.SubmissionDate = time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	if Sum(p) != Sum(q) {
		t.Fatal("time-of-day leaked into the digest")
	}
}

func TestVerify(t *testing.T) {
	p := basePayload()
	h := Sum(p)

	if !Verify(p, h) {
		t.Fatal("Verify rejected a matching payload")
	}

	tampered := p
	tampered.CapitalCents += 100
	if Verify(tampered, h) {
		t.Fatal("Verify accepted a tampered payload")
	}
	if Verify(p, "deadbeef") {
		t.Fatal("Verify accepted a malformed hash")
	}
}
