package classifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/maqala/maqala/pkg/utils"
)

// LocalConfidence is the fixed confidence for heuristic analysis. It is kept
// deliberately below what the remote classifier reports since lexical rules
// carry no learned signal.
const LocalConfidence = 0.6

// Rules holds the lexical signals and penalty weights used by the local
// classifier. The zero value is not useful; start from DefaultRules.
type Rules struct {
	// BannedTerms is the multilingual banned-term list, matched as
	// normalized substrings (case- and diacritic-insensitive).
	BannedTerms []string
	// ProfanityTerms are English profanity substrings.
	ProfanityTerms []string

	BannedTermPenalty  int
	ProfanityPenalty   int
	URLPenalty         int
	PunctuationPenalty int
	ShortTextPenalty   int
	RepeatPenalty      int

	// MinLength is the minimum text length in runes before the short-text
	// penalty applies.
	MinLength int
	// MaxPunctuation is how many '!' or '?' characters are tolerated.
	MaxPunctuation int
	// RepeatRunLength is the consecutive-repeat count that triggers the
	// repeated-character penalty.
	RepeatRunLength int
}

// DefaultRules returns the standard rule set. Deployments override the term
// lists and weights through configuration.
func DefaultRules() Rules {
	return Rules{
		BannedTerms: []string{
			"غبي", "حقير", "تافه", "قذر",
			"مجانا", "اضغط هنا", "اربح",
			"idiot", "scum", "free money", "click here",
		},
		ProfanityTerms: []string{
			"fuck", "shit", "bitch", "asshole", "bastard",
		},
		BannedTermPenalty:  30,
		ProfanityPenalty:   25,
		URLPenalty:         10,
		PunctuationPenalty: 10,
		ShortTextPenalty:   20,
		RepeatPenalty:      20,
		MinLength:          10,
		MaxPunctuation:     3,
		RepeatRunLength:    5,
	}
}

// Local scores comment text against lexical signals. It is pure and
// deterministic; no I/O.
type Local struct {
	rules Rules
}

// NewLocal creates a local classifier with the given rule set.
func NewLocal(rules Rules) *Local {
	return &Local{rules: rules}
}

// Classify scores the given text. The score starts at 100 and each signal
// subtracts a fixed penalty; repeated occurrences of the same term are not
// double-penalized. The result is clamped to 0.
func (l *Local) Classify(text string) *AnalysisResult {
	score := 100

	var (
		flagged []string
		reasons []string
	)

	lower := strings.ToLower(text)

	// Term matching goes through the normalizer so diacritics and case
	// differences do not hide a match
	normalizer := utils.NewTextNormalizer()

	// Banned terms, one penalty per distinct match
	for _, term := range l.rules.BannedTerms {
		if term == "" {
			continue
		}
		if normalizer.Contains(text, term) {
			score -= l.rules.BannedTermPenalty
			flagged = append(flagged, term)
			reasons = append(reasons, fmt.Sprintf("banned term %q", term))
		}
	}

	// URL schemes
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		score -= l.rules.URLPenalty
		reasons = append(reasons, "contains URL")
	}

	// Excessive punctuation
	if strings.Count(text, "!") > l.rules.MaxPunctuation {
		score -= l.rules.PunctuationPenalty
		reasons = append(reasons, "excessive exclamation marks")
	}

	if strings.Count(text, "?") > l.rules.MaxPunctuation {
		score -= l.rules.PunctuationPenalty
		reasons = append(reasons, "excessive question marks")
	}

	// Very short text
	if utf8.RuneCountInString(strings.TrimSpace(text)) < l.rules.MinLength {
		score -= l.rules.ShortTextPenalty
		reasons = append(reasons, "text too short")
	}

	// Long runs of a repeated character
	if hasRepeatedRun(text, l.rules.RepeatRunLength) {
		score -= l.rules.RepeatPenalty
		reasons = append(reasons, "repeated characters")
	}

	// Profanity, one penalty per distinct match
	for _, term := range l.rules.ProfanityTerms {
		if term == "" {
			continue
		}
		if normalizer.Contains(text, term) {
			score -= l.rules.ProfanityPenalty
			flagged = append(flagged, term)
			reasons = append(reasons, fmt.Sprintf("profanity %q", term))
		}
	}

	if score < 0 {
		score = 0
	}

	classification := ClassifyScore(score)

	return &AnalysisResult{
		Score:           score,
		Classification:  classification,
		SuggestedAction: ActionFor(classification),
		FlaggedTerms:    flagged,
		Confidence:      LocalConfidence,
		Reason:          strings.Join(reasons, "; "),
		Provider:        ProviderLocal,
	}
}

// hasRepeatedRun reports whether any rune repeats at least n times
// consecutively.
func hasRepeatedRun(text string, n int) bool {
	if n <= 1 {
		return true
	}

	var (
		prev rune
		run  int
	)

	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
			continue
		}
		prev = r
		run = 1
	}

	return false
}
