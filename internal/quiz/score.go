package quiz

// ScoreSession counts correct answers per section. Answers from unknown
// sections count toward TotalQuestions but toward no score.
func ScoreSession(results []AnswerResult) (ScoreSummary, error) {
	if len(results) == 0 {
		return ScoreSummary{}, ErrEmptyResultSet
	}
	s := ScoreSummary{
		TotalQuestions:   len(results),
		SectionQuestions: make(map[Section]int, len(Sections)),
	}
	for _, r := range results {
		if _, ok := ParseSection(string(r.Section)); !ok {
			continue
		}
		s.SectionQuestions[r.Section]++
		if !r.Correct {
			continue
		}
		switch r.Section {
		case SectionVocabulary:
			s.VocabularyScore++
		case SectionListening:
			s.ListeningScore++
		case SectionSpeaking:
			s.SpeakingScore++
		}
	}
	s.Total = s.VocabularyScore + s.ListeningScore + s.SpeakingScore
	return s, nil
}
