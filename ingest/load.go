package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// PressRecord is one outlet's identity. The JSON dump stores these as
// [id, name, logo] triples, logo possibly null.
type PressRecord struct {
	ID   string
	Name string
	Logo string
}

func (p *PressRecord) UnmarshalJSON(data []byte) error {
	var triple []*string
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("press record has %d fields, want 3", len(triple))
	}
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	p.ID = deref(triple[0])
	p.Name = deref(triple[1])
	p.Logo = deref(triple[2])
	return nil
}

func (p PressRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.ID, p.Name, p.Logo})
}

// LoadArticles reads a pre-scraped article dump.
func LoadArticles(path string) ([]RawArticle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read article dump: %w", err)
	}
	var raws []RawArticle
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode article dump %s: %w", path, err)
	}
	return raws, nil
}

// LoadPressRecords reads a pre-scraped press dump.
func LoadPressRecords(path string) ([]PressRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read press dump: %w", err)
	}
	var presses []PressRecord
	if err := json.Unmarshal(data, &presses); err != nil {
		return nil, fmt.Errorf("decode press dump %s: %w", path, err)
	}
	return presses, nil
}
