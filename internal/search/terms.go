// Package search serves the popular-search-terms listing behind a pluggable
// provider, so a real ranking source can replace the built-in list without
// touching handler code.
package search

// Term is one ranked search term.
type Term struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	Trend string `json:"trend"`
}

// TermProvider supplies ranked search terms.
type TermProvider interface {
	Top(limit int) ([]Term, error)
}

// StaticTermProvider returns a fixed ranked list, truncated to the requested
// size. It is the default provider until a real ranking pipeline exists.
type StaticTermProvider struct {
	terms []Term
}

// DefaultTerms is the built-in ranked list.
var DefaultTerms = []Term{
	{Term: "나이키", Count: 156, Trend: "up"},
	{Term: "아디다스", Count: 134, Trend: "up"},
	{Term: "반팔티", Count: 98, Trend: "down"},
	{Term: "청바지", Count: 87, Trend: "up"},
	{Term: "운동화", Count: 76, Trend: "up"},
	{Term: "후드티", Count: 65, Trend: "down"},
	{Term: "가방", Count: 54, Trend: "up"},
	{Term: "시계", Count: 43, Trend: "up"},
	{Term: "신발", Count: 38, Trend: "down"},
	{Term: "액세서리", Count: 32, Trend: "up"},
}

func NewStaticTermProvider(terms []Term) *StaticTermProvider {
	if terms == nil {
		terms = DefaultTerms
	}
	return &StaticTermProvider{terms: terms}
}

func (p *StaticTermProvider) Top(limit int) ([]Term, error) {
	if limit <= 0 || limit > len(p.terms) {
		limit = len(p.terms)
	}
	out := make([]Term, limit)
	copy(out, p.terms[:limit])
	return out, nil
}
