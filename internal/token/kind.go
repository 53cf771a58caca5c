package token

// Kind represents the category of a scanned token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input stream.
	EOF
	// Word is a run of letters, apostrophes and dash punctuation.
	Word
	// Number is a run of decimal digits with an optional leading minus.
	Number
	// Punct is any other single non-whitespace rune.
	Punct
	// Newline is a literal line feed.
	Newline
	// Space is a coalesced run of non-newline whitespace (opt-in).
	Space
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Word:    "Word",
	Number:  "Number",
	Punct:   "Punct",
	Newline: "Newline",
	Space:   "Space",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsWhitespace reports whether the kind carries whitespace.
func (k Kind) IsWhitespace() bool {
	return k == Newline || k == Space
}

// ParseKind maps a kind name (case-sensitive, as printed by String) back to Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Invalid, false
}
