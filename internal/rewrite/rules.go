// internal/rewrite/rules.go
package rewrite

import "regexp"

const (
	RuleOpening = "opening"
	RuleClosing = "closing"
)

// Rule is a global, literal regular-expression substitution.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// space matches every character Unicode treats as whitespace, not only the
// ASCII set covered by \s.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// Stats counts substitutions per rule name.
type Stats map[string]int

// Total returns the number of substitutions over all rules.
func (s Stats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// ArticleRules wrap each article's main container in an extra
// article-container div.
//
// The opening rule inserts the wrapper between <main class="main"> and
// <div class="container">. The closing rule re-emits the container's
// closing tag plus one more in front of </main>; it consumes the
// indentation in front of the existing </div> so the emitted indentation
// replaces it.
var ArticleRules = []Rule{
	{
		Name:        RuleOpening,
		Pattern:     regexp.MustCompile(`<main class="main">` + space + `*\n` + space + `*<div class="container">`),
		Replacement: "<main class=\"main\">\n\t\t<div class=\"article-container\">\n\t\t\t<div class=\"container\">",
	},
	{
		Name:        RuleClosing,
		Pattern:     regexp.MustCompile(`[ \t]*</div>` + space + `*\n` + space + `*</main>`),
		Replacement: "\t\t</div>\n\t\t</div>\n\t</main>",
	},
}

// Transform applies rules in order to content, replacing every match of
// each rule. Rules see the output of the rules before them.
func Transform(content string, rules []Rule) (string, Stats) {
	stats := make(Stats, len(rules))
	for _, rule := range rules {
		n := len(rule.Pattern.FindAllStringIndex(content, -1))
		stats[rule.Name] += n
		if n == 0 {
			continue
		}
		content = rule.Pattern.ReplaceAllLiteralString(content, rule.Replacement)
	}
	return content, stats
}
