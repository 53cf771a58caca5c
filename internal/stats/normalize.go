package stats

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeMode selects how words become statistics keys.
type NormalizeMode uint8

const (
	// NormalizeLower applies Unicode lower-casing.
	NormalizeLower NormalizeMode = iota
	// NormalizeFold applies full case folding ("Straße" and "STRASSE" collide).
	NormalizeFold
	// NormalizeNone only trims.
	NormalizeNone
)

var normalizeNames = [...]string{
	NormalizeLower: "lower",
	NormalizeFold:  "fold",
	NormalizeNone:  "none",
}

func (m NormalizeMode) String() string {
	if int(m) < len(normalizeNames) {
		return normalizeNames[m]
	}
	return fmt.Sprintf("NormalizeMode(%d)", m)
}

// ParseNormalizeMode maps a config value to a NormalizeMode.
func ParseNormalizeMode(s string) (NormalizeMode, error) {
	for i, name := range normalizeNames {
		if name == s {
			return NormalizeMode(i), nil
		}
	}
	return NormalizeLower, fmt.Errorf("unknown normalize mode %q (want lower|fold|none)", s)
}

// Options configures an Accumulator.
type Options struct {
	Normalize NormalizeMode
	NFC       bool // привести к NFC до смены регистра
}

// normalizer держит свой Caser: cases.Caser не потокобезопасен.
type normalizer struct {
	mode  NormalizeMode
	nfc   bool
	caser cases.Caser
}

func newNormalizer(opts Options) *normalizer {
	n := &normalizer{mode: opts.Normalize, nfc: opts.NFC}
	switch opts.Normalize {
	case NormalizeLower:
		n.caser = cases.Lower(language.Und)
	case NormalizeFold:
		n.caser = cases.Fold()
	}
	return n
}

// apply returns the key for raw, or "" when nothing is left after trimming.
func (n *normalizer) apply(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if n.nfc {
		s = norm.NFC.String(s)
	}
	if n.mode == NormalizeNone {
		return s
	}
	return n.caser.String(s)
}
