// Package corpus post-processes Wikipedia article text for corpus
// assembly: splitting articles into sections by heading, truncating at
// unwanted headings, and counting heading frequencies.
package corpus

import (
	"regexp"
	"sort"
)

// Section is a contiguous block of article text under one heading.
type Section struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// LeadHeading names the synthetic section holding the text before the
// first heading.
const LeadHeading = "Lead"

// headingPattern matches level-2 headings in plaintext extracts:
// a line of the form "== Heading ==".
var headingPattern = regexp.MustCompile(`\n *={2} *([^=].+?) *={2} *\n`)

// Headings extracts level-2 heading names from article text, in order.
func Headings(text string) []string {
	matches := headingPattern.FindAllStringSubmatch(text, -1)
	headings := make([]string, len(matches))
	for i, m := range matches {
		headings[i] = m[1]
	}
	return headings
}

// Split partitions article text into sections at level-2 headings. The
// text before the first heading becomes the "Lead" section, so the result
// always has at least one entry. Splitting a section body that contains
// no headings yields it back unchanged.
func Split(text string) []Section {
	locs := headingPattern.FindAllStringSubmatchIndex(text, -1)

	sections := make([]Section, 0, len(locs)+1)
	leadEnd := len(text)
	if len(locs) > 0 {
		leadEnd = locs[0][0]
	}
	sections = append(sections, Section{Heading: LeadHeading, Text: text[:leadEnd]})

	for i, loc := range locs {
		bodyEnd := len(text)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		sections = append(sections, Section{
			Heading: text[loc[2]:loc[3]],
			Text:    text[loc[1]:bodyEnd],
		})
	}
	return sections
}

// CutAtHeadings truncates article text at each named heading, discarding
// the heading and everything after it. Headings that do not occur are
// ignored.
func CutAtHeadings(text string, headings []string) string {
	for _, heading := range headings {
		pattern := regexp.MustCompile(`\n *={2} *` + regexp.QuoteMeta(heading) + ` *={2} *\n`)
		if loc := pattern.FindStringIndex(text); loc != nil {
			text = text[:loc[0]]
		}
	}
	return text
}

// CutArticlesAtHeadings applies CutAtHeadings to each article text.
func CutArticlesAtHeadings(texts []string, headings []string) []string {
	cut := make([]string, len(texts))
	for i, text := range texts {
		cut[i] = CutAtHeadings(text, headings)
	}
	return cut
}

// HeadingFrequency is a heading name with its occurrence count.
type HeadingFrequency struct {
	Heading string `json:"heading"`
	Count   int    `json:"count"`
}

// HeadingFrequencies counts level-2 headings across article texts,
// sorted by descending count with ties broken by name.
func HeadingFrequencies(texts []string) []HeadingFrequency {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, h := range Headings(text) {
			counts[h]++
		}
	}

	freqs := make([]HeadingFrequency, 0, len(counts))
	for h, n := range counts {
		freqs = append(freqs, HeadingFrequency{Heading: h, Count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Heading < freqs[j].Heading
	})
	return freqs
}
