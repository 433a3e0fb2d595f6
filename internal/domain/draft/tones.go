// Package draft rewrites free-form message text into one of four tones.
//
// The transforms are intentionally mechanical: ordered regex substitutions
// over the input, no language model involved. They normalize greetings,
// expand or introduce contractions, strip or add hedges, and adjust
// punctuation. Output for a fixed (text, tone) pair is deterministic.
package draft

import (
	"regexp"
	"strings"
)

// Tone selects a rewriting style
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneAssertive    Tone = "assertive"
	ToneCasual       Tone = "casual"
)

// Tones lists every supported tone.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneAssertive, ToneCasual}

type rule struct {
	pattern *regexp.Regexp
	replace string
}

var professionalRules = []rule{
	{regexp.MustCompile(`(?i)^\s*(hey|hi|yo|sup)\b[,!]?\s*`), "Hello, "},
	{regexp.MustCompile(`(?i)\b(gonna)\b`), "going to"},
	{regexp.MustCompile(`(?i)\b(wanna)\b`), "want to"},
	{regexp.MustCompile(`(?i)\b(gotta)\b`), "have to"},
	{regexp.MustCompile(`(?i)\bcan't\b`), "cannot"},
	{regexp.MustCompile(`(?i)\bwon't\b`), "will not"},
	{regexp.MustCompile(`(?i)\bdon't\b`), "do not"},
	{regexp.MustCompile(`(?i)\s*\b(lol|lmao|haha+)\b\s*`), " "},
	{regexp.MustCompile(`!+`), "."},
	{regexp.MustCompile(`\s{2,}`), " "},
}

var friendlyRules = []rule{
	{regexp.MustCompile(`(?i)^\s*(hello|dear)\b[,.]?\s*`), "Hi! "},
	{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
	{regexp.MustCompile(`(?i)\bwill not\b`), "won't"},
	{regexp.MustCompile(`(?i)\bdo not\b`), "don't"},
	{regexp.MustCompile(`(?i)\bregards\b[,.]?`), "cheers!"},
}

var assertiveRules = []rule{
	{regexp.MustCompile(`(?i)\b(i think|i believe|i feel like|in my opinion)\b[,]?\s*`), ""},
	{regexp.MustCompile(`(?i)\b(just|maybe|perhaps|possibly|sort of|kind of)\b\s*`), ""},
	{regexp.MustCompile(`(?i)\bcould you possibly\b`), "please"},
	{regexp.MustCompile(`(?i)\bwould it be ok(ay)? if\b`), "I will"},
	{regexp.MustCompile(`(?i)\bsorry to bother you[,.]?\s*`), ""},
	{regexp.MustCompile(`\s{2,}`), " "},
}

var casualRules = []rule{
	{regexp.MustCompile(`(?i)^\s*(hello|dear|greetings)\b[,.]?\s*`), "hey "},
	{regexp.MustCompile(`(?i)\bgoing to\b`), "gonna"},
	{regexp.MustCompile(`(?i)\bwant to\b`), "wanna"},
	{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
	{regexp.MustCompile(`(?i)\b(best regards|kind regards|sincerely)\b[,.]?`), "later!"},
}

var rulesByTone = map[Tone][]rule{
	ToneProfessional: professionalRules,
	ToneFriendly:     friendlyRules,
	ToneAssertive:    assertiveRules,
	ToneCasual:       casualRules,
}

// Valid reports whether t names a supported tone.
func Valid(t Tone) bool {
	_, ok := rulesByTone[t]
	return ok
}

// Transform rewrites text into the requested tone. Empty input is returned
// unchanged; an unknown tone is an error.
func Transform(text string, tone Tone) (string, error) {
	rules, ok := rulesByTone[tone]
	if !ok {
		return "", ErrUnknownTone
	}

	out := strings.TrimSpace(text)
	if out == "" {
		return "", nil
	}

	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.replace)
	}
	out = strings.TrimSpace(out)

	// Sentence-initial capitalization drifts after substitutions; fix the
	// first rune only, except for the deliberately lowercase casual tone.
	if tone != ToneCasual && out != "" {
		out = strings.ToUpper(out[:1]) + out[1:]
	}

	return out, nil
}
