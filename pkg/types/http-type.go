package types

// GraphRequest asks for a subgraph. Query is an optional custom Cypher
// statement; when absent the default traversal runs. Limit is bounded to
// [1, 1000] and defaults to 100 when omitted.
type GraphRequest struct {
	Query *string `json:"query"`
	Limit *int    `json:"limit" binding:"omitempty,min=1,max=1000"`
}

type SearchRequest struct {
	Query           string `json:"query" binding:"required,min=3"`
	Limit           *int   `json:"limit" binding:"omitempty,min=1,max=50"`
	OnlyFullContent *bool  `json:"only_full_content"`
}

type DocumentHit struct {
	Title          string   `json:"title"`
	Abstract       string   `json:"abstract"`
	ContentPreview string   `json:"content_preview"`
	Link           string   `json:"link"`
	Certainty      *float64 `json:"certainty"`
	FullAbstract   string   `json:"full_abstract"`
	FullContent    string   `json:"full_content"`
}

type SearchResponse struct {
	Items []DocumentHit `json:"items"`
}

type TitleRequest struct {
	Text string `json:"text" binding:"required,min=3,max=5000"`
}

type TitleResponse struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

type InsightRequest struct {
	Query           string `json:"query" binding:"required,min=3"`
	Limit           *int   `json:"limit" binding:"omitempty,min=1,max=20"`
	OnlyFullContent *bool  `json:"only_full_content"`
}

// Reference is a numbered citation backing an insight.
type Reference struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	Certainty *float64 `json:"certainty"`
}

type InsightResponse struct {
	Insight        string      `json:"insight"`
	References     []Reference `json:"references"`
	PapersAnalyzed int         `json:"papers_analyzed"`
	Source         string      `json:"source"`
}

type PaperRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Abstract string `json:"abstract"`
	Content  string `json:"content"`
	Link     string `json:"link"`
}

type PaperResponse struct {
	ID string `json:"id"`
}
