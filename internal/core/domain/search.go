package domain

// SearchHit is one bill matched by a full-text search.
type SearchHit struct {
	Relevance      int     `json:"relevance"`
	BillID         int     `json:"bill_id"`
	Number         string  `json:"bill_number"`
	Title          string  `json:"title"`
	LastAction     string  `json:"last_action"`
	LastActionDate string  `json:"last_action_date"`
	URL            string  `json:"url"`
	TextURL        string  `json:"text_url,omitempty"`
	Chamber        Chamber `json:"chamber"`
}

// SearchSummary describes the page of results returned.
type SearchSummary struct {
	Query     string `json:"query"`
	Count     int    `json:"count"`
	Page      int    `json:"page"`
	PageTotal int    `json:"page_total"`
}

// SearchResults is a normalised search response.
type SearchResults struct {
	Summary SearchSummary `json:"summary"`
	Hits    []SearchHit   `json:"hits"`
}
