package core

import (
	"encoding/json"
	"fmt"

	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/gateway"
)

// EntityTypeKnowledgeEntry is the graph entity type backing knowledge entries.
const EntityTypeKnowledgeEntry = "KnowledgeEntry"

// Property keys of the KnowledgeEntry entity type.
const (
	propTitle          = "title"
	propBody           = "body"
	propCategory       = "category"
	propTags           = "tags"
	propCodeSnippets   = "code_snippets"
	propFilePaths      = "file_paths"
	propExternalLinks  = "external_links"
	propLastVerifiedAt = "last_verified_at"
)

// ToEntityProperties encodes entry attrs into the string-keyed property bag
// the gateway stores. The four list fields become JSON array strings;
// last_verified_at is only present when set. Pure function, no I/O.
func ToEntityProperties(attrs model.EntryAttrs) (map[string]string, error) {
	props := map[string]string{
		propTitle:    attrs.Title,
		propBody:     attrs.Body,
		propCategory: string(attrs.Category),
	}

	lists := map[string][]string{
		propTags:          attrs.Tags,
		propCodeSnippets:  attrs.CodeSnippets,
		propFilePaths:     attrs.FilePaths,
		propExternalLinks: attrs.ExternalLinks,
	}
	for key, values := range lists {
		encoded, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		props[key] = string(encoded)
	}

	if attrs.LastVerifiedAt != nil {
		props[propLastVerifiedAt] = *attrs.LastVerifiedAt
	}

	return props, nil
}

// ToKnowledgeEntry decodes a generic entity back into the typed domain
// record. A malformed list property means the stored entity was corrupted by
// another writer; that is surfaced as an error, never coerced to an empty
// list.
func ToKnowledgeEntry(entity gateway.Entity) (*model.KnowledgeEntry, error) {
	entry := &model.KnowledgeEntry{
		ID:       entity.ID,
		Title:    entity.Properties[propTitle],
		Body:     entity.Properties[propBody],
		Category: model.Category(entity.Properties[propCategory]),
	}

	lists := map[string]*[]string{
		propTags:          &entry.Tags,
		propCodeSnippets:  &entry.CodeSnippets,
		propFilePaths:     &entry.FilePaths,
		propExternalLinks: &entry.ExternalLinks,
	}
	for key, target := range lists {
		raw, ok := entity.Properties[key]
		if !ok || raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(raw), target); err != nil {
			return nil, fmt.Errorf("corrupted %s property on entity %s: %w", key, entity.ID, err)
		}
	}

	if v, ok := entity.Properties[propLastVerifiedAt]; ok {
		entry.LastVerifiedAt = &v
	}

	return entry, nil
}
