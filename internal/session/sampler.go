package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/studyquiz/internal/bank"
)

// Build draws n questions from b and shuffles each one's options.
//
// When the bank holds at least n questions they are sampled without
// replacement. Smaller banks are sampled with replacement so the session
// still has exactly n questions. Every slot gets its own shuffle, so a
// repeated record usually shows its options in a different order.
func Build(b *bank.Bank, n int, rng Rand) (*Session, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: session size must be positive, got %d", ErrInvalidArgument, n)
	}
	if b.Size() == 0 {
		return nil, fmt.Errorf("%w: bank is empty", ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	indices := sampleIndices(b.Size(), n, rng)

	questions := make([]Question, n)
	for slot, idx := range indices {
		rec := b.At(idx)
		opts := slices.Clone(rec.Options)
		rng.Shuffle(len(opts), func(i, j int) {
			opts[i], opts[j] = opts[j], opts[i]
		})
		questions[slot] = Question{
			Record:    rec,
			BankIndex: idx,
			Options:   opts,
		}
	}

	return New(questions), nil
}

// WithReplacement reports whether a session of n questions drawn from a bank
// of the given size has to repeat questions.
func WithReplacement(bankSize, n int) bool {
	return bankSize < n
}

func sampleIndices(size, n int, rng Rand) []int {
	if !WithReplacement(size, n) {
		return rng.Perm(size)[:n]
	}

	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(size)
	}
	return out
}
