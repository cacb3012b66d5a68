// Package quiz builds randomized multiple-choice vocabulary questions and
// scores submitted answers. Every function is stateless; randomness comes
// from the *rand.Rand the caller passes in.
package quiz

import (
	"math/rand/v2"

	"github.com/mind-engage/nihongo-exam/internal/vocab"
)

// SelectDistractors draws up to 3 distinct wrong meanings from bank. Every
// entry whose meaning equals correct is excluded, duplicates included.
func SelectDistractors(r *rand.Rand, correct string, bank vocab.Collection) []string {
	seen := map[string]struct{}{correct: {}}
	pool := make([]string, 0, bank.Len())
	for i := 0; i < bank.Len(); i++ {
		m := bank.At(i).Meaning
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		pool = append(pool, m)
	}

	k := min(OptionCount-1, len(pool))
	// partial Fisher-Yates: the first k slots end up a uniform sample
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// BuildOptions shuffles correct together with the distractors and returns the
// list with the position of correct in it. The index is read off the same
// shuffled slice that is returned.
func BuildOptions(r *rand.Rand, correct string, distractors []string) ([]string, int) {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	for i, o := range options {
		if o == correct {
			return options, i
		}
	}
	return options, -1 // unreachable: correct is always in options
}

// GenerateQuestions samples min(count, bank.Len()) distinct entries and builds
// a question for each. A count above the bank size is clamped, not rejected.
func GenerateQuestions(r *rand.Rand, count int, bank vocab.Collection) ([]Question, error) {
	if bank.Len() == 0 {
		return nil, ErrInsufficientVocabulary
	}
	n := max(0, min(count, bank.Len()))
	picks := r.Perm(bank.Len())[:n]

	out := make([]Question, 0, n)
	for _, idx := range picks {
		e := bank.At(idx)
		options, correct := BuildOptions(r, e.Meaning, SelectDistractors(r, e.Meaning, bank))
		out = append(out, Question{
			Japanese:     e.Japanese,
			Reading:      e.Reading,
			Meaning:      e.Meaning,
			Options:      options,
			CorrectIndex: correct,
		})
	}
	return out, nil
}

// Generator binds a bank to a per-call random source for request handlers.
type Generator struct {
	bank    vocab.Collection
	newRand func() *rand.Rand
}

// NewGenerator returns a Generator over bank. newRand may be nil, in which
// case each call gets a freshly seeded PCG so concurrent callers share no
// random state.
func NewGenerator(bank vocab.Collection, newRand func() *rand.Rand) *Generator {
	if newRand == nil {
		newRand = func() *rand.Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }
	}
	return &Generator{bank: bank, newRand: newRand}
}

func (g *Generator) Questions(count int) ([]Question, error) {
	return GenerateQuestions(g.newRand(), count, g.bank)
}

// BankSize is the number of entries questions are drawn from.
func (g *Generator) BankSize() int { return g.bank.Len() }
