package splitentity

import (
	"fmt"
	"strings"

	"github.com/veedubyou/track-splitter/src/shared/lib/cerr"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

type EngineType string

const (
	DemucsType   EngineType = "demucs"
	SpleeterType EngineType = "spleeter"
)

var EngineTypes = []EngineType{DemucsType, SpleeterType}

func ParseEngineType(value string) (EngineType, error) {
	for _, engineType := range EngineTypes {
		if string(engineType) == value {
			return engineType, nil
		}
	}

	err := mark.Message(spliterrors.UnsupportedEngineMark,
		fmt.Sprintf("Engine %q is not supported, expected one of %s", value, engineList()))
	return "", cerr.Field("engine", value).Wrap(err).Error("Failed to parse engine")
}

// MatchEngineType resolves a case-insensitive prefix of an engine name, as long as only one engine starts with it
func MatchEngineType(prefix string) (EngineType, error) {
	normalized := strings.ToLower(strings.TrimSpace(prefix))

	var matches []EngineType
	if normalized != "" {
		for _, engineType := range EngineTypes {
			if strings.HasPrefix(string(engineType), normalized) {
				matches = append(matches, engineType)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", mark.Message(spliterrors.UnsupportedEngineMark,
			fmt.Sprintf("Engine %q is not supported, expected one of %s", prefix, engineList()))
	default:
		return "", mark.Message(spliterrors.UnsupportedEngineMark,
			fmt.Sprintf("Engine %q is ambiguous, it could be any of %s", prefix, joinEngines(matches)))
	}
}

func engineList() string {
	return joinEngines(EngineTypes)
}

func joinEngines(engineTypes []EngineType) string {
	names := make([]string, len(engineTypes))
	for i, engineType := range engineTypes {
		names[i] = string(engineType)
	}

	return strings.Join(names, ", ")
}
