package xray

import "strings"

// Contract/C2C terms that signal staffing requirements. W2 terms are
// deliberately absent: this tool sources corp-to-corp placements only.
var contractTerms = []string{
	"c2c", "corp to corp", "corp-to-corp", "corp 2 corp",
	"contract", "contract to hire", "c2h", "1099",
	"6 months", "12 months", "long term", "short term",
}

// Terms indicating vendor/staffing company postings.
var vendorIndicators = []string{
	"staffing", "consulting", "solutions", "technologies",
	"infotech", "infosys", "cognizant", "tcs", "wipro",
	"hcl", "tek systems", "robert half", "randstad",
}

// HasContractTerm reports whether a query carries any contract-signaling
// term. Used for summary counts and to verify generated output.
func HasContractTerm(query string) bool {
	lower := strings.ToLower(query)
	for _, term := range contractTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func quote(value string) string {
	return `"` + value + `"`
}

// quotedOr joins values as `"a" OR "b"`, skipping blanks.
func quotedOr(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		parts = append(parts, quote(value))
	}
	return strings.Join(parts, " OR ")
}

// skillClause builds the quoted OR-disjunction of the top skills.
// Returns "" when there are no skills so callers can omit the clause.
func skillClause(skills []string, max int) string {
	if len(skills) > max {
		skills = skills[:max]
	}
	return quotedOr(skills...)
}

// group wraps a non-empty clause in parentheses.
func group(clause string) string {
	if clause == "" {
		return ""
	}
	return "(" + clause + ")"
}

// withQuoted appends a quoted exact-phrase term when value is non-empty.
func withQuoted(query string, value string) string {
	if strings.TrimSpace(value) == "" {
		return query
	}
	if query == "" {
		return quote(value)
	}
	return query + " " + quote(value)
}

// withGroup appends a parenthesized clause when it is non-empty.
func withGroup(query string, clause string) string {
	if clause == "" {
		return query
	}
	if query == "" {
		return group(clause)
	}
	return query + " " + group(clause)
}

// withTerm appends a raw term when it is non-empty.
func withTerm(query string, term string) string {
	if term == "" {
		return query
	}
	if query == "" {
		return term
	}
	return query + " " + term
}

// titleOrSkills builds `"title" OR "skillA" OR "skillB"` for builders that
// accept either the role or its skills as the anchor term.
func titleOrSkills(title string, skills []string, max int) string {
	if len(skills) > max {
		skills = skills[:max]
	}
	values := append([]string{title}, skills...)
	return quotedOr(values...)
}

// skillsOrTitle is titleOrSkills with the title last.
func skillsOrTitle(skills []string, title string, max int) string {
	if len(skills) > max {
		skills = skills[:max]
	}
	values := append(append([]string{}, skills...), title)
	return quotedOr(values...)
}
