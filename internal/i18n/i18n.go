// Package i18n provides internationalization support for fddl diagnostics.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	currentLang Language
	once        sync.Once
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
func Init() {
	once.Do(func() {
		currentLang = detectLanguage()
	})
}

// SetLanguage sets the current language manually, overriding detection.
func SetLanguage(lang Language) {
	once.Do(func() {})
	currentLang = lang
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	return currentLang
}

// T translates a message key to the current language.
// If the key is not found, returns the key itself.
// Supports format arguments like fmt.Sprintf.
func T(key string, args ...any) string {
	Init()

	var messages map[string]string
	switch currentLang {
	case LangChinese:
		messages = zhMessages
	default:
		messages = enMessages
	}

	template, ok := messages[key]
	if !ok {
		// Fallback to English
		template, ok = enMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// detectLanguage detects the system language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"FDDL_LANG", "LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := ParseLanguage(lang); detected != "" {
				return detected
			}
		}
	}
	return LangEnglish
}

// ParseLanguage parses a language code such as "zh_CN.UTF-8", "zh-CN" or "en"
// and returns the matching Language, or "" when it is not supported.
func ParseLanguage(code string) Language {
	code = strings.ToLower(code)

	if strings.HasPrefix(code, "zh") {
		return LangChinese
	}
	if strings.HasPrefix(code, "en") {
		return LangEnglish
	}

	return ""
}
