package models

import "encoding/json"

// SearchSource is one citation returned by the provider, paired with a
// generated label ("Source 1", "Source 2", ...). Titles are placeholders,
// never fetched page titles.
type SearchSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Search é uma busca persistida: pergunta, resposta e fontes. Imutável
// depois de criada (só existe delete, nunca update).
type Search struct {
	ID          int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      int64  `gorm:"not null;index" json:"-"`
	Query       string `gorm:"type:text;not null" json:"query"`
	Response    string `gorm:"type:text" json:"response"`
	SourcesJSON string `gorm:"column:sources;type:text" json:"-"`
	// CreatedAt is milliseconds since epoch, assigned server-side on
	// insert. Ties at ms resolution fall back to ID order.
	CreatedAt int64 `gorm:"not null;index" json:"created_at"`

	Sources []SearchSource `gorm:"-" json:"sources"`
}

func (Search) TableName() string {
	return "searches"
}

// EncodeSources serializes Sources into the persisted column.
func (s *Search) EncodeSources() error {
	if len(s.Sources) == 0 {
		s.SourcesJSON = "[]"
		return nil
	}
	b, err := json.Marshal(s.Sources)
	if err != nil {
		return err
	}
	s.SourcesJSON = string(b)
	return nil
}

// DecodeSources hydrates Sources from the persisted column.
func (s *Search) DecodeSources() error {
	s.Sources = []SearchSource{}
	if s.SourcesJSON == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.SourcesJSON), &s.Sources)
}
