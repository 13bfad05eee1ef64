package response

import "torchline_portal/internal/domain/entities"

// QuoteResponse exposes the document id and version next to the quote fields.
type QuoteResponse struct {
	ID string `json:"id"`
	entities.Quote
	Version int `json:"version"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Quote: q, Version: q.Version}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Limit  int             `json:"limit"`
	Skip   int             `json:"skip"`
}
