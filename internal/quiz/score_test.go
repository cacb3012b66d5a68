package quiz_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/mind-engage/nihongo-exam/internal/quiz"
)

func TestScoreSessionEmpty(t *testing.T) {
	if _, err := quiz.ScoreSession(nil); !errors.Is(err, quiz.ErrEmptyResultSet) {
		t.Fatalf("err = %v, want ErrEmptyResultSet", err)
	}
}

func TestScoreSessionCountsPerSection(t *testing.T) {
	got, err := quiz.ScoreSession([]quiz.AnswerResult{
		{Section: quiz.SectionVocabulary, Correct: true},
		{Section: quiz.SectionListening, Correct: false},
		{Section: quiz.SectionSpeaking, Correct: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.VocabularyScore != 1 || got.ListeningScore != 0 || got.SpeakingScore != 1 {
		t.Fatalf("scores = %+v", got)
	}
	if got.Total != 2 || got.TotalQuestions != 3 {
		t.Fatalf("total = %d/%d", got.Total, got.TotalQuestions)
	}
}

func TestScoreSessionIgnoresUnknownSections(t *testing.T) {
	got, err := quiz.ScoreSession([]quiz.AnswerResult{
		{Section: "grammar", Correct: true},
		{Section: "", Correct: true},
		{Section: quiz.SectionVocabulary, Correct: true},
		{Section: quiz.SectionVocabulary, Correct: false},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Total != 1 || got.TotalQuestions != 4 {
		t.Fatalf("summary = %+v", got)
	}
	if got.Percentage(quiz.SectionVocabulary) != 50 {
		t.Fatalf("vocabulary %% = %d", got.Percentage(quiz.SectionVocabulary))
	}
	if got.Percentage(quiz.SectionSpeaking) != 0 {
		t.Fatalf("speaking %% = %d", got.Percentage(quiz.SectionSpeaking))
	}
	if got.TotalPercentage() != 25 {
		t.Fatalf("total %% = %d", got.TotalPercentage())
	}
}

func TestPercentageRounding(t *testing.T) {
	got, _ := quiz.ScoreSession([]quiz.AnswerResult{
		{Section: quiz.SectionListening, Correct: true},
		{Section: quiz.SectionListening, Correct: true},
		{Section: quiz.SectionListening, Correct: false},
	})
	// 2/3 = 66.67 -> 67
	if p := got.Percentage(quiz.SectionListening); p != 67 {
		t.Fatalf("percentage = %d, want 67", p)
	}
}

func TestAnswerResultJSONKeepsFieldsInOrder(t *testing.T) {
	raw := `[
	  {"questionId":"q1","section":"vocabulary","answer":"cat","correct":true,"score":1.5},
	  {"section":"listening","correct":"yes"},
	  {"questionId":"q3","correct":true}
	]`
	var results []quiz.AnswerResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len = %d", len(results))
	}
	first := results[0]
	if first.Section != quiz.SectionVocabulary || !first.Correct {
		t.Fatalf("first = %+v", first)
	}
	if want := []string{"questionId", "section", "answer", "correct", "score"}; !reflect.DeepEqual(first.Keys, want) {
		t.Fatalf("keys = %v, want %v", first.Keys, want)
	}
	// non-boolean correct does not count
	if results[1].Correct {
		t.Fatal("string correct treated as true")
	}
	if results[2].Section != "" {
		t.Fatalf("missing section = %q", results[2].Section)
	}

	out, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"questionId":"q1","section":"vocabulary","answer":"cat","correct":true,"score":1.5}`
	if string(out) != want {
		t.Fatalf("marshal = %s, want %s", out, want)
	}

	if err := json.Unmarshal([]byte(`["not-an-object"]`), &results); err == nil {
		t.Fatal("expected error for non-object result")
	}
}
