package domain

// Response is the fixed-shape body returned by an opensearch suggestion
// service: [echoedQuery, suggestions, descriptions, urls]
type Response struct {
	Query        string
	Suggestions  []string
	Descriptions []string
	URLs         []string
}
