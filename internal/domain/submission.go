package domain

import (
	"fmt"
	"time"
)

// HelpType enumerates what a quote requester asked help with.
// The zero value means the requester left the choice blank.
type HelpType string

const (
	HelpTypeUnset    HelpType = ""
	HelpTypeQuote    HelpType = "quote"
	HelpTypePolicy   HelpType = "policy"
	HelpTypeQuestion HelpType = "question"
)

// ParseHelpType validates an incoming help type value.
func ParseHelpType(raw string) (HelpType, error) {
	switch HelpType(raw) {
	case HelpTypeUnset, HelpTypeQuote, HelpTypePolicy, HelpTypeQuestion:
		return HelpType(raw), nil
	default:
		return HelpTypeUnset, fmt.Errorf("unknown help type %q", raw)
	}
}

// Language enumerates the languages the agency serves.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageSpanish    Language = "es"
)

// ParseLanguage validates a language code, falling back to English when blank.
func ParseLanguage(raw string) (Language, error) {
	if raw == "" {
		return LanguageEnglish, nil
	}
	switch Language(raw) {
	case LanguageEnglish, LanguagePortuguese, LanguageSpanish:
		return Language(raw), nil
	default:
		return LanguageEnglish, fmt.Errorf("unknown language %q", raw)
	}
}

// QuoteSubmission is a prospective customer's request for coverage pricing.
type QuoteSubmission struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	HelpType  HelpType
	Language  Language
	Consent   bool
	CreatedAt time.Time
}

// ContactSubmission is a general inquiry from the contact form.
type ContactSubmission struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Consent   bool
	CreatedAt time.Time
}
