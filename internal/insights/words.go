// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package insights

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/patent-lens/pkg/types"
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// English stopword list (NLTK's english set, minus contraction forms the
// tokenizer can never produce once punctuation is stripped).
var stopwords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {}, "ourselves": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
	"he": {}, "him": {}, "his": {}, "himself": {}, "she": {}, "her": {}, "hers": {}, "herself": {},
	"it": {}, "its": {}, "itself": {}, "they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	"what": {}, "which": {}, "who": {}, "whom": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "having": {}, "do": {}, "does": {}, "did": {}, "doing": {},
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "if": {}, "or": {}, "because": {},
	"as": {}, "until": {}, "while": {}, "of": {}, "at": {}, "by": {}, "for": {}, "with": {},
	"about": {}, "against": {}, "between": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "to": {}, "from": {}, "up": {}, "down": {},
	"in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {}, "again": {}, "further": {},
	"then": {}, "once": {}, "here": {}, "there": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"all": {}, "any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "no": {}, "nor": {}, "not": {}, "only": {}, "own": {}, "same": {},
	"so": {}, "than": {}, "too": {}, "very": {}, "s": {}, "t": {}, "can": {}, "will": {}, "just": {},
	"don": {}, "should": {}, "now": {}, "d": {}, "ll": {}, "m": {}, "o": {}, "re": {}, "ve": {}, "y": {},
	"ain": {}, "aren": {}, "couldn": {}, "didn": {}, "doesn": {}, "hadn": {}, "hasn": {},
	"haven": {}, "isn": {}, "ma": {}, "mightn": {}, "mustn": {}, "needn": {}, "shan": {},
	"shouldn": {}, "wasn": {}, "weren": {}, "won": {}, "wouldn": {},
}

// Patent boilerplate terms dominate every abstract corpus, so they are
// excluded alongside the function words.
var domainStopwords = map[string]struct{}{
	"method": {}, "device": {}, "system": {}, "apparatus": {}, "invention": {},
}

// topWords counts keyword occurrences across all abstracts and keeps the
// max most frequent, count descending with ties broken by word ascending.
func topWords(records []types.PatentRecord, extra []string, max int) []types.WordCount {
	extraSet := make(map[string]struct{}, len(extra))
	for _, w := range extra {
		extraSet[strings.ToLower(w)] = struct{}{}
	}

	freq := map[string]int{}
	for _, w := range corpusWords(records) {
		if _, ok := stopwords[w]; ok {
			continue
		}
		if _, ok := domainStopwords[w]; ok {
			continue
		}
		if _, ok := extraSet[w]; ok {
			continue
		}
		freq[w]++
	}

	words := make([]types.WordCount, 0, len(freq))
	for w, n := range freq {
		words = append(words, types.WordCount{Word: w, Count: n})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count == words[j].Count {
			return words[i].Word < words[j].Word
		}
		return words[i].Count > words[j].Count
	})
	if len(words) > max {
		words = words[:max]
	}
	return words
}

// corpusWords joins every abstract into one lowercase corpus, strips
// characters that are neither word characters nor whitespace, and splits on
// whitespace.
func corpusWords(records []types.PatentRecord) []string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = r.Abstract
	}
	text := strings.ToLower(strings.Join(parts, " "))
	text = nonWordChars.ReplaceAllString(text, "")
	return strings.Fields(text)
}
