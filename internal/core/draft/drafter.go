package draft

import (
	"context"
	"fmt"

	"github.com/lorekeep/lattice/internal/config"
	"github.com/lorekeep/lattice/internal/core/common"
	"github.com/lorekeep/lattice/internal/core/model"
	"github.com/lorekeep/lattice/internal/llm"
)

const defaultPrompt = `You are drafting a knowledge base entry from raw notes.
Respond with a single JSON object with keys: title (string), body (string),
category (one of: how_to, concept, reference, troubleshooting, decision, snippet),
tags (list of short strings), code_snippets (list of strings),
file_paths (list of strings), external_links (list of strings).

Notes:
%s`

// Drafter turns free text into knowledge-entry attrs via an LLM. The output
// is normalized so it always passes entry-creation validation; the caller
// reviews and submits it through the regular create path.
type Drafter struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewDrafter(llmClient llm.LLMClient, cfg config.DraftConfig) *Drafter {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	return &Drafter{LLM: llmClient, Prompt: prompt}
}

type draftPayload struct {
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	CodeSnippets  []string `json:"code_snippets"`
	FilePaths     []string `json:"file_paths"`
	ExternalLinks []string `json:"external_links"`
}

func (d *Drafter) Draft(ctx context.Context, text string) (*model.EntryAttrs, error) {
	prompt := fmt.Sprintf(d.Prompt, text)

	response, err := d.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate draft: %w", err)
	}

	payload, err := common.ParseJSON[draftPayload](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}

	if payload.Title == "" {
		return nil, fmt.Errorf("draft is missing a title")
	}
	if payload.Body == "" {
		payload.Body = text
	}

	category := model.Category(payload.Category)
	if !category.Valid() {
		category = model.CategoryConcept
	}

	tags := payload.Tags
	if len(tags) > model.MaxTags {
		tags = tags[:model.MaxTags]
	}

	return &model.EntryAttrs{
		Title:         payload.Title,
		Body:          payload.Body,
		Category:      category,
		Tags:          tags,
		CodeSnippets:  payload.CodeSnippets,
		FilePaths:     payload.FilePaths,
		ExternalLinks: payload.ExternalLinks,
	}, nil
}
