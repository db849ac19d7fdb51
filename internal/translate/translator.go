package translate

import (
	"context"
	"regexp"
	"strings"
)

// Source identifies which tier produced a translation.
type Source string

const (
	SourcePhrases     Source = "phrases"     // phrase-table substitution
	SourceLLM         Source = "llm"         // model-backed translation
	SourcePassthrough Source = "passthrough" // untranslated (English or basic fallback)
)

// Result is one translated message.
type Result struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// Translator converts alert text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, language string) (Result, error)
}

// Compile-time check that PhraseTranslator implements Translator.
var _ Translator = (*PhraseTranslator)(nil)

// PhraseTranslator translates by substituting known alert phrases and
// words, longest first, case-insensitively. It never returns an error:
// text with no known phrases gets a basic "<Alert>: text" rendering so the
// announcement is still recognizably an alert in the target language.
type PhraseTranslator struct{}

// NewPhraseTranslator returns the phrase-table translator.
func NewPhraseTranslator() *PhraseTranslator {
	return &PhraseTranslator{}
}

func (t *PhraseTranslator) Translate(_ context.Context, text, language string) (Result, error) {
	if strings.EqualFold(language, "English") {
		return Result{Text: text, Source: SourcePassthrough}, nil
	}

	lang, ok := LookupLanguage(language)
	if !ok {
		return Result{Text: basicTranslation(text, language), Source: SourcePassthrough}, nil
	}

	out := text
	for _, phrase := range phraseOrder {
		translations := phrases[phrase]
		repl, ok := translations[lang.Name]
		if !ok {
			continue
		}
		if pattern := phrasePatterns[phrase]; pattern.MatchString(out) {
			out = pattern.ReplaceAllString(out, repl)
		}
	}

	out = normalizeUnits(out)
	out = applyGrammarPass(out, lang.Name)

	if out == text {
		return Result{Text: basicTranslation(text, lang.Name), Source: SourcePassthrough}, nil
	}
	return Result{Text: out, Source: SourcePhrases}, nil
}

var (
	celsiusPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*°C`)
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	kmhPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*km/h`)
)

// normalizeUnits keeps numeric readings and their units intact across
// languages.
func normalizeUnits(s string) string {
	s = celsiusPattern.ReplaceAllString(s, "$1°C")
	s = percentPattern.ReplaceAllString(s, "$1%")
	s = kmhPattern.ReplaceAllString(s, "$1 km/h")
	return s
}

func applyGrammarPass(s, language string) string {
	if word, ok := levelWord[language]; ok {
		s = levelPattern.ReplaceAllString(s, word)
	}
	for _, sub := range grammarPasses[language] {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}
	return s
}

// basicTranslation tags untranslatable text with the target language's
// alert word so it is still announced as an alert.
func basicTranslation(text, language string) string {
	alertWord := "Alert"
	if w, ok := phrases["Alert"][language]; ok {
		alertWord = w
	}
	if suffixAlertLanguages[language] {
		return text + " - " + alertWord
	}
	return alertWord + ": " + text
}
