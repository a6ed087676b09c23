// Package vocab holds the word model and loads vocabulary lists.
package vocab

import (
	"strings"
	"unicode/utf8"
)

// Placeholder marks where the headword substitutes into an example sentence.
const Placeholder = "～"

// MaxOptionRunes is the longest meaning shown as a quiz option before truncation.
const MaxOptionRunes = 60

// Back holds the answer side of a card.
type Back struct {
	Meaning      string `json:"meaning"`
	HanziPinyin  string `json:"hanzi_pinyin"`
	PartOfSpeech string `json:"part_of_speech"`
	MeasureWord  string `json:"measure_word,omitempty"`
	Example      string `json:"example,omitempty"`
}

// Word is a single vocabulary card. ID is the join key between words,
// progress records and quiz log entries.
type Word struct {
	ID    int    `json:"id"`
	Front string `json:"front"`
	Back  Back   `json:"back"`
}

// OptionLabel returns the text shown for w as a multiple-choice option:
// the first ';'-separated meaning, truncated to MaxOptionRunes.
func (w Word) OptionLabel() string {
	meaning, _, _ := strings.Cut(w.Back.Meaning, ";")
	meaning = strings.TrimSpace(meaning)
	if utf8.RuneCountInString(meaning) > MaxOptionRunes {
		runes := []rune(meaning)
		return string(runes[:MaxOptionRunes]) + "..."
	}
	return meaning
}

// Example is a parsed two-line example: the sentence, then its transcription.
type Example struct {
	Sentence      string
	Transcription string
}

// ParseExample splits a newline-delimited example string.
func ParseExample(s string) Example {
	if s == "" {
		return Example{}
	}
	sentence, transcription, _ := strings.Cut(s, "\n")
	return Example{
		Sentence:      strings.TrimSpace(sentence),
		Transcription: strings.TrimSpace(transcription),
	}
}

// Example returns the parsed example of w.
func (w Word) Example() Example {
	return ParseExample(w.Back.Example)
}

// IsZero reports whether the example is empty.
func (e Example) IsZero() bool {
	return e.Sentence == "" && e.Transcription == ""
}

// Spoken returns the sentence with the first placeholder replaced by headword.
func (e Example) Spoken(headword string) string {
	return strings.Replace(e.Sentence, Placeholder, headword, 1)
}

// Segments splits the sentence around every placeholder, for highlighting
// the headword between segments.
func (e Example) Segments() []string {
	return strings.Split(e.Sentence, Placeholder)
}

// PosCategory groups parts of speech for display.
type PosCategory string

const (
	PosVerb      PosCategory = "verb"
	PosNoun      PosCategory = "noun"
	PosAdjective PosCategory = "adjective"
	PosOther     PosCategory = "other"
)

// Category classifies the word's part-of-speech tag.
func (w Word) Category() PosCategory {
	p := strings.ToLower(w.Back.PartOfSpeech)
	switch {
	case strings.Contains(p, "verb"):
		return PosVerb
	case strings.Contains(p, "noun"):
		return PosNoun
	case strings.Contains(p, "adj"):
		return PosAdjective
	}
	return PosOther
}

// PosLabel returns the part-of-speech tag, or "WORD" when missing.
func (w Word) PosLabel() string {
	if w.Back.PartOfSpeech == "" {
		return "WORD"
	}
	return strings.ToUpper(w.Back.PartOfSpeech)
}
