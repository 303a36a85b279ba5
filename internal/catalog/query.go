package catalog

import (
	"strings"

	"github.com/gsqget/gsq-downloader/internal/model"
)

// MaxSuggestedTerms caps how many suggested terms go into the query.
const MaxSuggestedTerms = 3

// MatchEverythingQuery matches all records on the portal.
const MatchEverythingQuery = "*:*"

// BaseFilter restricts every search to report-type records.
const BaseFilter = "type:report"

// BuildQuery assembles the portal search query for a data type and search
// mode. Suggested mode OR-joins the first MaxSuggestedTerms of the data
// type's term list; custom mode OR-joins whitespace-separated user terms and
// falls back to match-everything when none were entered.
func BuildQuery(dt DataType, mode model.SearchMode, customTerms string) string {
	switch mode {
	case model.SearchModeSuggested:
		terms := dt.Terms
		if len(terms) > MaxSuggestedTerms {
			terms = terms[:MaxSuggestedTerms]
		}
		return strings.Join(terms, " OR ")
	case model.SearchModeCustom:
		fields := strings.Fields(customTerms)
		if len(fields) == 0 {
			return MatchEverythingQuery
		}
		return strings.Join(fields, " OR ")
	default:
		return MatchEverythingQuery
	}
}

// BuildFilters assembles the portal filter list: the data type's category
// filter when it has one, always ending with the report-type restriction.
func BuildFilters(dt DataType) []string {
	var filters []string
	if dt.Filter != "" {
		filters = append(filters, dt.Filter)
	}
	return append(filters, BaseFilter)
}

// DescribeTerms renders the active search terms for the configuration
// summary. Unlike BuildQuery it distinguishes "no custom terms" from the
// match-everything mode.
func DescribeTerms(dt DataType, mode model.SearchMode, customTerms string) string {
	switch mode {
	case model.SearchModeSuggested:
		return BuildQuery(dt, mode, customTerms)
	case model.SearchModeCustom:
		if strings.TrimSpace(customTerms) == "" {
			return "No terms"
		}
		return BuildQuery(dt, mode, customTerms)
	default:
		return MatchEverythingQuery + " (everything)"
	}
}
