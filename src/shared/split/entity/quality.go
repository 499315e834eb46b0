package splitentity

import (
	"fmt"

	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
	spliterrors "github.com/veedubyou/track-splitter/src/shared/split/errors"
)

type QualityTier string

const (
	HighQuality QualityTier = "high"
	LowQuality  QualityTier = "low"
)

func ParseQualityTier(value string) (QualityTier, error) {
	switch QualityTier(value) {
	case HighQuality:
		return HighQuality, nil
	case LowQuality:
		return LowQuality, nil
	default:
		return "", mark.Message(spliterrors.UnsupportedQualityMark,
			fmt.Sprintf("Quality %q is not supported, expected high or low", value))
	}
}
