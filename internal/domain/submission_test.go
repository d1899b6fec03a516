package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHelpType(t *testing.T) {
	for _, raw := range []string{"", "quote", "policy", "question"} {
		ht, err := ParseHelpType(raw)
		require.NoError(t, err)
		require.Equal(t, HelpType(raw), ht)
	}

	_, err := ParseHelpType("complaint")
	require.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage("")
	require.NoError(t, err)
	require.Equal(t, LanguageEnglish, lang)

	for _, raw := range []string{"en", "pt", "es"} {
		lang, err := ParseLanguage(raw)
		require.NoError(t, err)
		require.Equal(t, Language(raw), lang)
	}

	_, err = ParseLanguage("fr")
	require.Error(t, err)
}
