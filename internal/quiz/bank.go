// Package quiz provides the question bank behind the quiz variant: a set of
// prompts with one correct and one wrong answer each, loaded from YAML or
// from the storage layer, and picked deterministically from a session RNG.
package quiz

import (
	_ "embed"
	"fmt"
	"math/rand"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/bank.yaml
var defaultBankYAML []byte

// Question is one quiz entry. The variant shows the prompt above the next
// question pipe and places Correct and Wrong on the two halves of its gap.
type Question struct {
	ID      int64  `yaml:"-"`
	Topic   string `yaml:"topic"`
	Prompt  string `yaml:"prompt"`
	Correct string `yaml:"correct"`
	Wrong   string `yaml:"wrong"`
}

// Validate checks that a question is usable.
func (q Question) Validate() error {
	switch {
	case q.Prompt == "":
		return fmt.Errorf("quiz: question has an empty prompt")
	case q.Correct == "":
		return fmt.Errorf("quiz: question %q has no correct answer", q.Prompt)
	case q.Wrong == "":
		return fmt.Errorf("quiz: question %q has no wrong answer", q.Prompt)
	case q.Correct == q.Wrong:
		return fmt.Errorf("quiz: question %q has identical answers", q.Prompt)
	}
	return nil
}

// Bank is an immutable set of questions.
type Bank struct {
	questions []Question
}

// NewBank validates the questions and builds a bank.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz: bank needs at least one question")
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quiz: question %d: %w", i, err)
		}
	}
	b := &Bank{questions: make([]Question, len(questions))}
	copy(b.questions, questions)
	return b, nil
}

// bankFile is the YAML document shape.
type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// ParseBank parses a YAML question bank.
func ParseBank(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: cannot parse bank: %w", err)
	}
	return NewBank(f.Questions)
}

// DefaultBank returns the embedded starter bank. It panics only if the
// embedded data is broken, which a test pins.
func DefaultBank() *Bank {
	b, err := ParseBank(defaultBankYAML)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded bank is invalid: %v", err))
	}
	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of all questions.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Pick draws a question using the supplied RNG, so the sequence is fully
// determined by the session seed.
func (b *Bank) Pick(rng *rand.Rand) Question {
	return b.questions[rng.Intn(len(b.questions))]
}
