package splitentity

import "strings"

type StemRole string

const (
	VocalsRole       StemRole = "vocals"
	InstrumentalRole StemRole = "karaoke"
)

var StemRoles = []StemRole{VocalsRole, InstrumentalRole}

// Token is used both in artifact file names and as the name of the role's output directory
func (s StemRole) Token() string {
	return string(s)
}

// Name is how the role reads in messages
func (s StemRole) Name() string {
	if s == InstrumentalRole {
		return "instrumental"
	}

	return string(s)
}

func ParseStemRole(value string) (StemRole, bool) {
	for _, role := range StemRoles {
		if role.Token() == value {
			return role, true
		}
	}

	return "", false
}

var instrumentalMarkers = []string{"accompaniment", "no_vocals"}

const vocalsMarker = "vocals"

// ClassifyStem identifies which role an engine output file plays by its base name.
// "no_vocals" contains "vocals", so instrumental markers are checked first.
func ClassifyStem(baseName string) (StemRole, bool) {
	name := strings.ToLower(baseName)

	for _, marker := range instrumentalMarkers {
		if strings.Contains(name, marker) {
			return InstrumentalRole, true
		}
	}

	if strings.Contains(name, vocalsMarker) {
		return VocalsRole, true
	}

	return "", false
}
