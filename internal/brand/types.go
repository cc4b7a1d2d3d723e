// Package brand provides the core types for brand sentiment results.
package brand

import (
	"fmt"
	"strings"
)

// Sentiment is one of the three sentiment categories a mention falls into.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Negative Sentiment = "Negative"
	Neutral  Sentiment = "Neutral"
)

// Sentiments lists the categories in display order.
var Sentiments = []Sentiment{Positive, Negative, Neutral}

// Color returns the named color used when charting the category.
func (s Sentiment) Color() string {
	switch s {
	case Positive:
		return "green"
	case Negative:
		return "red"
	default:
		return "gray"
	}
}

// Result holds aggregate mention and sentiment counts for a brand.
// The counts are reported as-is; nothing ties the three sentiment
// counts to Mentions.
type Result struct {
	Brand    string `yaml:"brand" json:"brand"`       // The queried brand name
	Mentions int    `yaml:"mentions" json:"mentions"` // Total mentions found
	Positive int    `yaml:"positive" json:"positive"`
	Negative int    `yaml:"negative" json:"negative"`
	Neutral  int    `yaml:"neutral" json:"neutral"`
}

// Demo returns the built-in demo record.
func Demo() Result {
	return Result{
		Brand:    "Zomato",
		Mentions: 130,
		Positive: 75,
		Negative: 30,
		Neutral:  25,
	}
}

// WithBrand returns a copy of r labeled with name.
func (r Result) WithBrand(name string) Result {
	r.Brand = name
	return r
}

// Count returns the count for a sentiment category.
func (r Result) Count(s Sentiment) int {
	switch s {
	case Positive:
		return r.Positive
	case Negative:
		return r.Negative
	case Neutral:
		return r.Neutral
	}
	return 0
}

// Summary formats the result as plain text, one reading per line.
func (r Result) Summary() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Results for: %s\n", r.Brand))
	sb.WriteString(fmt.Sprintf("Mentions: %d\n", r.Mentions))
	for _, s := range Sentiments {
		sb.WriteString(fmt.Sprintf("%s: %d\n", s, r.Count(s)))
	}
	return sb.String()
}
