package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

var (
	translations = make(map[string]map[string]string)
	DefaultLang  = "en"

	supported = []language.Tag{language.English, language.Czech}
	matcher   = language.NewMatcher(supported)
)

func init() {
	if err := LoadTranslations(); err != nil {
		panic(fmt.Sprintf("i18n: %v", err))
	}
}

// LoadTranslations reads the embedded message catalogs.
func LoadTranslations() error {
	for _, tag := range supported {
		lang := tag.String()
		data, err := locales.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			return err
		}
		var t map[string]string
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("parse %s catalog: %w", lang, err)
		}
		translations[lang] = t
	}
	return nil
}

func T(lang, key string) string {
	if t, ok := translations[lang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	// Fallback to English
	if lang != DefaultLang {
		return T(DefaultLang, key)
	}
	return key
}

// Tf is T followed by fmt.Sprintf.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// DetectLanguage picks the best supported language from Accept-Language.
func DetectLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}
	return supported[index].String()
}
