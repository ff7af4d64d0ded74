package datagen

import (
	"fmt"
	"math/rand"

	"github.com/termforge/termgate/internal/domain"
)

// Groups holds three submission batches with controlled overlap, used to
// exercise the admission filter's duplicate handling:
//
//	group2 shares 70% of its terms with group1;
//	group3 shares 50% with group1 and 20% with group2.
type Groups struct {
	Group1 []domain.Candidate `json:"group1"`
	Group2 []domain.Candidate `json:"group2"`
	Group3 []domain.Candidate `json:"group3"`
}

// BuildGroups arranges terms into three overlapping groups of groupSize.
// terms must contain at least 3*groupSize entries after capping; the
// effective group size shrinks to len(terms)/3 when it does not. The rng
// drives shuffling and overlap sampling, so a seeded source gives
// reproducible output.
func BuildGroups(terms []string, groupSize int, rng *rand.Rand) (Groups, error) {
	maxSize := len(terms) / 3
	if maxSize == 0 {
		return Groups{}, fmt.Errorf("build groups: need at least 3 terms, got %d", len(terms))
	}
	if groupSize > maxSize {
		groupSize = maxSize
	}

	shuffled := make([]string, len(terms))
	copy(shuffled, terms)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	group1 := shuffled[:groupSize]

	overlap := int(float64(groupSize) * 0.7)
	group2 := sample(rng, group1, overlap)
	group2 = append(group2, shuffled[groupSize:groupSize+(groupSize-overlap)]...)

	fromG1 := int(float64(groupSize) * 0.5)
	fromG2 := int(float64(groupSize) * 0.2)
	group3 := sample(rng, group1, fromG1)
	group3 = append(group3, sample(rng, group2, fromG2)...)
	group3 = append(group3, shuffled[groupSize*2:groupSize*2+(groupSize-fromG1-fromG2)]...)

	return Groups{
		Group1: Candidates(group1),
		Group2: Candidates(group2),
		Group3: Candidates(group3),
	}, nil
}

// Candidates converts raw terms into candidates with placeholder meanings.
func Candidates(terms []string) []domain.Candidate {
	out := make([]domain.Candidate, len(terms))
	for i, t := range terms {
		out[i] = domain.Candidate{
			Term:    t,
			Meaning: fmt.Sprintf("Definition of %s", t),
		}
	}
	return out
}

// sample returns n distinct elements drawn from src without replacement.
func sample(rng *rand.Rand, src []string, n int) []string {
	idx := rng.Perm(len(src))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, src[i])
	}
	return out
}
