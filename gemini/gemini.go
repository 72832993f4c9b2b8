// Package gemini fetches stock fundamentals from the Gemini API, using
// Google Search grounding to find the figures on the public web and a JSON
// response schema to get them back in a machine-readable shape.
//
// The portfolio only sees the fairvalue.Quoter interface; everything in
// here (prompt, schema, grounding) is provider detail.
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/etnz/fairvalue"
)

// defaultModel is the search-grounded model answering the fundamentals
// queries.
const defaultModel = "gemini-3-pro-preview"

// Client implements fairvalue.Quoter on top of the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

// New creates a client using the ambient credential (GEMINI_API_KEY or the
// other well-known environment variables the SDK reads).
func New(ctx context.Context) (*Client, error) {
	c, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize the Gemini client: %w", err)
	}
	return &Client{genai: c, model: defaultModel}, nil
}

// Quote fetches the fundamentals of one SET symbol for the last full fiscal
// year. Credential failures are wrapped with fairvalue.ErrCredential so the
// portfolio can raise its needs-credential state.
func (c *Client) Quote(ctx context.Context, symbol string) (fairvalue.Quote, error) {
	fiscalYear := time.Now().Year() - 1

	config := &genai.GenerateContentConfig{
		Tools:            []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType: "application/json",
		ResponseSchema:   quoteSchema,
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt(symbol, fiscalYear)), config)
	if err != nil {
		if fairvalue.IsCredential(err) {
			return fairvalue.Quote{}, fmt.Errorf("%w: %v", fairvalue.ErrCredential, err)
		}
		return fairvalue.Quote{}, fmt.Errorf("could not fetch %q: %w", symbol, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fairvalue.Quote{}, fmt.Errorf("no response for %q", symbol)
	}
	cand := resp.Candidates[0]

	return parseQuote(cand.Content.Parts[0].Text, groundingSources(cand), fiscalYear)
}

// groundingSources maps the response's grounding chunks to citation sources.
func groundingSources(cand *genai.Candidate) []fairvalue.Source {
	if cand.GroundingMetadata == nil {
		return nil
	}
	var sources []fairvalue.Source
	for _, chunk := range cand.GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, fairvalue.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}
