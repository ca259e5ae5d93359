package core

// QueryTypeElasticsearch is the query language of the search backend.
const QueryTypeElasticsearch = "elasticsearch"

// QueryString is a query in the platform's query language.
type QueryString struct {
	Type        string `json:"type" yaml:"type" mapstructure:"type"`
	QueryString string `json:"query_string" yaml:"query_string" mapstructure:"query_string"`
}

// ElasticsearchQueryString builds a query string in the default query language.
func ElasticsearchQueryString(q string) QueryString {
	return QueryString{Type: QueryTypeElasticsearch, QueryString: q}
}

// IsEmpty reports whether the query carries no query text.
func (q QueryString) IsEmpty() bool {
	return q.QueryString == ""
}
