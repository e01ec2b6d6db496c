package model

// MaxTags caps the number of tags accepted when an entry is created. The
// cap is not re-enforced on read.
const MaxTags = 20

// KnowledgeEntry is the strongly-typed domain projection of a graph entity
// of type KnowledgeEntry.
type KnowledgeEntry struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Category       Category `json:"category"`
	Tags           []string `json:"tags"`
	CodeSnippets   []string `json:"code_snippets"`
	FilePaths      []string `json:"file_paths"`
	ExternalLinks  []string `json:"external_links"`
	LastVerifiedAt *string  `json:"last_verified_at,omitempty"`
}

// EntryAttrs is the loosely-typed creation input for a knowledge entry,
// validated by the entry service before any graph I/O.
type EntryAttrs struct {
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Category       Category `json:"category"`
	Tags           []string `json:"tags"`
	CodeSnippets   []string `json:"code_snippets"`
	FilePaths      []string `json:"file_paths"`
	ExternalLinks  []string `json:"external_links"`
	LastVerifiedAt *string  `json:"last_verified_at,omitempty"`
}
