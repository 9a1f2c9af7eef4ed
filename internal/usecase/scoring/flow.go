package scoring

import (
	"context"
	"fmt"
	"strconv"
)

// ScoreFlow locates the best-matching sentence for the salutation,
// introduction and closing roles and scores the ordering. A body segment
// between introduction and closing upgrades the label.
func (s *IntroductionScorer) ScoreFlow(ctx context.Context) (int, string, error) {
	if len(s.sentences) == 0 {
		return 0, "No text", nil
	}

	sentVecs, err := s.sentenceVectors(ctx)
	if err != nil {
		return 0, "", err
	}

	locate := func(anchors []string, threshold float64) (int, bool, error) {
		anchorVecs, err := s.encoder.Encode(ctx, anchors)
		if err != nil {
			return 0, false, err
		}
		idx, sim := bestMatch(sentVecs, anchorVecs)
		return idx, sim > threshold, nil
	}

	idxSal, hasSal, err := locate(anchorsSalutation, flowSalutationThreshold)
	if err != nil {
		return 0, "", err
	}
	idxIntro, hasIntro, err := locate(anchorsIntro, flowIntroThreshold)
	if err != nil {
		return 0, "", err
	}
	idxClose, hasClose, err := locate(anchorsClosing, flowClosingThreshold)
	if err != nil {
		return 0, "", err
	}

	// Check whether there is body content between introduction and closing
	hasBody := false
	if hasIntro && hasClose && idxClose > idxIntro && idxClose-idxIntro >= 1 {
		midVecs := sentVecs[idxIntro+1 : idxClose]
		if len(midVecs) > 0 {
			bodyVecs, err := s.encoder.Encode(ctx, anchorsBody)
			if err != nil {
				return 0, "", err
			}
			if maxSimilarity(midVecs, bodyVecs) > flowBodyThreshold {
				hasBody = true
			}
		}
	}

	debug := fmt.Sprintf("(Indices: Sal=%s, Intro=%s, End=%s)",
		indexLabel(idxSal, hasSal), indexLabel(idxIntro, hasIntro), indexLabel(idxClose, hasClose))

	if hasSal && hasClose {
		if hasIntro {
			if idxSal <= idxIntro && idxIntro < idxClose {
				if hasBody {
					return 5, "Perfect Flow", nil
				}
				return 5, "Good Flow (Short body)", nil
			}
			if idxIntro == idxClose {
				return 0, fmt.Sprintf("Disordered: Introduction and Closing are detected in same sentence. %s", debug), nil
			}
		} else if idxSal < idxClose {
			if hasBody {
				return 5, "Good Flow", nil
			}
			return 5, "Acceptable Flow", nil
		}
	}

	return 0, fmt.Sprintf("Flow disordered. %s", debug), nil
}

func indexLabel(idx int, present bool) string {
	if !present {
		return "X"
	}
	return strconv.Itoa(idx)
}
