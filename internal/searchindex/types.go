package searchindex

// Hit is one ranked search result.
type Hit struct {
	ID     string         `json:"_id"`
	Score  float64        `json:"_score"`
	Fields map[string]any `json:"fields,omitempty"`
}

// Record is one document to upsert. Must carry an "_id" key; the index
// embeds the "text" field.
type Record map[string]any

type searchRequest struct {
	Query struct {
		Inputs map[string]string `json:"inputs"`
		TopK   int               `json:"top_k"`
	} `json:"query"`
}

type searchResponse struct {
	Result struct {
		Hits []Hit `json:"hits"`
	} `json:"result"`
}

type upsertRequest struct {
	Records []Record `json:"records"`
}

// IndexStats is the describe-index-stats probe response.
type IndexStats struct {
	Dimension        int                       `json:"dimension"`
	TotalVectorCount int                       `json:"totalVectorCount"`
	Namespaces       map[string]NamespaceStats `json:"namespaces"`
}

type NamespaceStats struct {
	VectorCount int `json:"vectorCount"`
}
