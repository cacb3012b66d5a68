package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONFile reads a JSON array of {japanese, reading, meaning} objects.
type JSONFile struct {
	Path string
}

func (f JSONFile) Load(_ context.Context) (Collection, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return Collection{}, fmt.Errorf("open vocabulary: %w", err)
	}
	defer fh.Close()
	return DecodeJSON(fh)
}

// DecodeJSON parses a vocabulary array. Unknown fields are ignored.
func DecodeJSON(r io.Reader) (Collection, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return Collection{}, fmt.Errorf("decode vocabulary: %w", err)
	}
	c := NewCollection(entries)
	if c.Len() == 0 {
		return Collection{}, ErrEmpty
	}
	return c, nil
}
