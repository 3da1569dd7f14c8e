package i18n

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var locales embed.FS

// Fallback is the language used when nothing else matches.
const Fallback = "fr"

// supported lists the bundled languages; the first entry is the matcher default.
var supported = []language.Tag{language.French, language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

// Languages returns the codes of the bundled languages.
func Languages() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		codes[i] = base.String()
	}
	return codes
}

// envKeys are consulted in order by Detect.
var envKeys = []string{"FRESHKEEPER_LANG", "LC_ALL", "LC_MESSAGES", "LANG"}

// Detect picks the interface language from the environment, e.g. LANG=es_ES.UTF-8.
func Detect(getenv func(string) string) string {
	for _, key := range envKeys {
		value := getenv(key)
		if value == "" {
			continue
		}
		if code, ok := Match(value); ok {
			return code
		}
	}
	return Fallback
}

// Match maps a locale string such as "en-GB" or "es_ES.UTF-8@euro" to a
// bundled language code.
func Match(locale string) (string, bool) {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	base, _ := supported[idx].Base()
	return base.String(), true
}

// Translator looks up interface strings for one language.
type Translator struct {
	lang     string
	messages map[string]map[string]string
}

// New loads the bundled locales. Unknown languages fall back to Fallback.
func New(lang string) (*Translator, error) {
	messages := make(map[string]map[string]string)
	for _, code := range Languages() {
		data, err := locales.ReadFile("locales/" + code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", code, err)
		}
		flat, err := parseLocale(data)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", code, err)
		}
		messages[code] = flat
	}

	if _, ok := messages[lang]; !ok {
		lang = Fallback
	}
	return &Translator{lang: lang, messages: messages}, nil
}

// Lang returns the active language code.
func (tr *Translator) Lang() string {
	return tr.lang
}

// T returns the message for key in the active language, then in Fallback,
// then the key itself. Arguments are applied with fmt.Sprintf.
func (tr *Translator) T(key string, args ...any) string {
	msg, ok := tr.messages[tr.lang][key]
	if !ok {
		msg, ok = tr.messages[Fallback][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// parseLocale flattens nested YAML into dotted keys.
func parseLocale(data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(prefix, k), child, out)
		}
	case map[any]any:
		for k, child := range v {
			flatten(join(prefix, fmt.Sprint(k)), child, out)
		}
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
