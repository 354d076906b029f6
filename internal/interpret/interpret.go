// Package interpret extracts structured fields from free-text customer
// input.  The reference implementation is a pattern-table heuristic:
// an ordered list of phrase patterns is tried first, then a fallback
// strips known greeting words and takes the first remaining token.
// Every function is deterministic per input, which the dialogue engine
// relies on for testability; a smarter interpreter can replace this
// one as long as it keeps that contract.
package interpret

import (
	"regexp"
	"strings"
)

// namePatterns are tried in order; the first match wins.  Each pattern
// captures the name token in group 1.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i am ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)my name is ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)i'm ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)call me ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)this is ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)^([a-zA-Z]+)$`),
	regexp.MustCompile(`(?i)^hi[,\s]+([a-zA-Z]+)$`),
	regexp.MustCompile(`(?i)^hello[,\s]+([a-zA-Z]+)$`),
	regexp.MustCompile(`(?i)^hey[,\s]+([a-zA-Z]+)$`),
}

// greetingWords are stripped, longest phrases first, before the
// fallback extraction takes the first remaining token.
var greetingWords = []string{"my name is", "this is", "call me", "i am", "i'm", "hello", "hey", "hi"}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// emailToken matches an email-address-shaped token anywhere in a line.
const emailToken = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`

// emailPatterns are tried in order; phrase-introduced addresses take
// precedence over a bare token so that "my email is a@b.com, not
// c@d.com" resolves predictably.
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my email is[:\s]+(` + emailToken + `)`),
	regexp.MustCompile(`(?i)email address[:\s]+(` + emailToken + `)`),
	regexp.MustCompile(`(?i)email[:\s]+(` + emailToken + `)`),
	regexp.MustCompile(`(?i)here'?s my email[:\s]+(` + emailToken + `)`),
	regexp.MustCompile(`(?i)you can reach me at[:\s]+(` + emailToken + `)`),
	regexp.MustCompile(`(` + emailToken + `)`),
}

// emailExact is the strict address pattern a whole string must match
// to be considered a valid email.
var emailExact = regexp.MustCompile(`^` + emailToken + `$`)

// Heuristic is the reference utterance interpreter.  It is stateless;
// the zero value is ready to use.
type Heuristic struct{}

// ExtractName pulls a person's name out of a greeting line.  It
// returns the name title-cased, or "" when nothing name-like is found.
func (Heuristic) ExtractName(text string) string {
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return title(strings.TrimSpace(m[1]))
		}
	}
	cleaned := strings.ToLower(text)
	for _, w := range greetingWords {
		cleaned = strings.ReplaceAll(cleaned, w, "")
	}
	cleaned = strings.TrimSpace(nonWord.ReplaceAllString(cleaned, ""))
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		return title(fields[0])
	}
	return ""
}

// ExtractEmail pulls an email address out of free text, lower-cased,
// or "" when none is present.
func (Heuristic) ExtractEmail(text string) string {
	for _, p := range emailPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.ToLower(strings.TrimSpace(m[1]))
		}
	}
	return ""
}

// ValidateEmail reports whether s is a syntactically valid address
// under the strict pattern used throughout the dialogue.
func (Heuristic) ValidateEmail(s string) bool {
	return emailExact.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// title upper-cases the first letter and lower-cases the rest, which
// is all the name normalisation the dialogue needs.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
