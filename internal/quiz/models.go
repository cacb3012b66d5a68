package quiz

import "errors"

var (
	// ErrInsufficientVocabulary means there is nothing to ask about.
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")
	// ErrEmptyResultSet means a submission carried no answers.
	ErrEmptyResultSet = errors.New("empty result set")
)

// OptionCount is the size of a full multiple-choice list.
const OptionCount = 4

type Section string

const (
	SectionVocabulary Section = "vocabulary"
	SectionListening  Section = "listening"
	SectionSpeaking   Section = "speaking"
)

// Sections lists the sections in display order.
var Sections = []Section{SectionVocabulary, SectionListening, SectionSpeaking}

// ParseSection reports whether s names one of the known sections.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

type Question struct {
	Japanese     string   `json:"japanese"`
	Reading      string   `json:"reading"`
	Meaning      string   `json:"meaning"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
}

type ScoreSummary struct {
	VocabularyScore int `json:"vocabularyScore"`
	ListeningScore  int `json:"listeningScore"`
	SpeakingScore   int `json:"speakingScore"`
	Total           int `json:"total"`
	TotalQuestions  int `json:"totalQuestions"`

	// per-section answer counts, used for percentages
	SectionQuestions map[Section]int `json:"-"`
}

// Score returns the correct-answer count for sec.
func (s ScoreSummary) Score(sec Section) int {
	switch sec {
	case SectionVocabulary:
		return s.VocabularyScore
	case SectionListening:
		return s.ListeningScore
	case SectionSpeaking:
		return s.SpeakingScore
	}
	return 0
}

// Percentage rounds score/max(1,n)*100, n being the answers in sec.
func (s ScoreSummary) Percentage(sec Section) int {
	return percent(s.Score(sec), s.SectionQuestions[sec])
}

// TotalPercentage is the overall share of correct answers.
func (s ScoreSummary) TotalPercentage() int {
	return percent(s.Total, s.TotalQuestions)
}

func percent(score, n int) int {
	if n < 1 {
		n = 1
	}
	return (score*200 + n) / (2 * n)
}
