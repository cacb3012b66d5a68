package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnswerResult is one submitted answer. Section and Correct drive scoring;
// every submitted field, including those two, is kept in Fields with its
// first-seen key order so the export can reproduce the client's columns.
type AnswerResult struct {
	Section Section
	Correct bool

	Keys   []string
	Fields map[string]any
}

func (a *AnswerResult) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("answer result must be an object")
	}
	res := AnswerResult{Fields: map[string]any{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if _, dup := res.Fields[key]; !dup {
			res.Keys = append(res.Keys, key)
		}
		res.Fields[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	if s, ok := res.Fields["section"].(string); ok {
		res.Section = Section(s)
	}
	if c, ok := res.Fields["correct"].(bool); ok {
		res.Correct = c
	}
	*a = res
	return nil
}

func (a AnswerResult) MarshalJSON() ([]byte, error) {
	if a.Fields == nil {
		return json.Marshal(struct {
			Section Section `json:"section"`
			Correct bool    `json:"correct"`
		}{a.Section, a.Correct})
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(a.Fields[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
