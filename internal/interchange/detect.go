package interchange

import "strings"

// detection rules, tested in order. A rule either requires every one of its
// tokens (allOf) or any one of them (anyOf) to appear among the normalized
// headers. Tokens are substring matches on normalized header names.
type detectRule struct {
	source string
	allOf  []string
	anyOf  []string
}

var detectRules = []detectRule{
	// BUSY 21 ledger sheets are only recognized when all three signature
	// columns are present; generic inventory sheets often contain one of
	// these words on its own.
	{source: SourceBusy21, allOf: []string{"itemdetails", "parentgroup", "clqty"}},
	{source: SourceSquare, anyOf: []string{"variationname", "defaultunitcost", "stockalertcount", "squareonline"}},
	{source: SourceQuickBooks, anyOf: []string{"productservicename", "salesdescription", "purchasedescription", "preferredvendor"}},
	{source: SourceShopify, anyOf: []string{"handle", "bodyhtml", "variantsku", "variantinventoryqty"}},
	{source: SourceCompazz, allOf: []string{"productname", "unitprice", "taxrate%"}},
}

// DetectSource inspects a header row and returns the best-matching source
// identifier. It never fails: when no signature matches it returns
// SourceGeneric and the caller proceeds with the fallback vocabulary.
func DetectSource(headers []string) string {
	normalized := make([]string, 0, len(headers))
	for _, h := range headers {
		if n := NormalizeHeader(h); n != "" {
			normalized = append(normalized, n)
		}
	}

	contains := func(token string) bool {
		for _, h := range normalized {
			if strings.Contains(h, token) {
				return true
			}
		}
		return false
	}

	for _, rule := range detectRules {
		if len(rule.allOf) > 0 {
			matched := true
			for _, tok := range rule.allOf {
				if !contains(tok) {
					matched = false
					break
				}
			}
			if matched {
				return rule.source
			}
			continue
		}
		for _, tok := range rule.anyOf {
			if contains(tok) {
				return rule.source
			}
		}
	}
	return SourceGeneric
}
