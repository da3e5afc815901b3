// Package localization resolves admin UI resources per language id.
// Bundles are embedded JSON files named by BCP 47 tag.
package localization

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/erp/backoffice/internal/application/returns"
	"golang.org/x/text/language"
)

//go:embed resources/*.json
var embedded embed.FS

// Localizer implements returns.Localizer over embedded resource bundles.
// A key missing in the requested language falls back to the default
// language bundle, then to the key itself.
type Localizer struct {
	languages         map[int64]language.Tag
	defaultLanguageID int64
	bundleTags        []language.Tag
	bundles           []map[string]string
	matcher           language.Matcher
}

// New loads the embedded bundles for the configured languages
func New(languages map[int64]language.Tag, defaultLanguageID int64) (*Localizer, error) {
	return NewFromFS(embedded, "resources", languages, defaultLanguageID)
}

// NewFromFS loads bundles from dir of fsys
func NewFromFS(fsys fs.FS, dir string, languages map[int64]language.Tag, defaultLanguageID int64) (*Localizer, error) {
	defaultTag, ok := languages[defaultLanguageID]
	if !ok {
		return nil, fmt.Errorf("default language id %d is not configured", defaultLanguageID)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource bundles: %w", err)
	}

	l := &Localizer{languages: languages, defaultLanguageID: defaultLanguageID}
	for _, entry := range entries {
		name, isJSON := strings.CutSuffix(entry.Name(), ".json")
		if entry.IsDir() || !isJSON {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("resource bundle %s: %w", entry.Name(), err)
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		bundle := map[string]string{}
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("resource bundle %s: %w", entry.Name(), err)
		}
		l.bundleTags = append(l.bundleTags, tag)
		l.bundles = append(l.bundles, bundle)
	}
	if len(l.bundles) == 0 {
		return nil, fmt.Errorf("no resource bundles found in %s", dir)
	}

	// The default language bundle goes first so the matcher falls back to it.
	_, idx, _ := language.NewMatcher(l.bundleTags).Match(defaultTag)
	l.bundleTags[0], l.bundleTags[idx] = l.bundleTags[idx], l.bundleTags[0]
	l.bundles[0], l.bundles[idx] = l.bundles[idx], l.bundles[0]
	l.matcher = language.NewMatcher(l.bundleTags)
	return l, nil
}

// T returns the resource value for key, or the key when no bundle has it
func (l *Localizer) T(_ context.Context, languageID int64, key string) string {
	if v, ok := l.lookup(languageID, key); ok {
		return v
	}
	return key
}

// GetLocalizedEnum returns the label of value, or its name when unknown
func (l *Localizer) GetLocalizedEnum(_ context.Context, languageID int64, value returns.LocalizableEnum) string {
	if v, ok := l.lookup(languageID, value.ResourceKey()); ok {
		return v
	}
	return value.String()
}

// Tag returns the configured tag of a language id, the default language's
// tag for unknown ids
func (l *Localizer) Tag(languageID int64) language.Tag {
	if tag, ok := l.languages[languageID]; ok {
		return tag
	}
	return l.languages[l.defaultLanguageID]
}

// ResolveLanguageID matches an Accept-Language header against the
// configured languages. It returns the default language id when nothing matches.
func (l *Localizer) ResolveLanguageID(acceptLanguage string) int64 {
	if strings.TrimSpace(acceptLanguage) == "" {
		return l.defaultLanguageID
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return l.defaultLanguageID
	}

	ids := make([]int64, 0, len(l.languages))
	tags := make([]language.Tag, 0, len(l.languages))
	ids = append(ids, l.defaultLanguageID)
	tags = append(tags, l.languages[l.defaultLanguageID])
	for id, tag := range l.languages {
		if id == l.defaultLanguageID {
			continue
		}
		ids = append(ids, id)
		tags = append(tags, tag)
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return l.defaultLanguageID
	}
	return ids[idx]
}

// DefaultLanguageID returns the fallback language id
func (l *Localizer) DefaultLanguageID() int64 {
	return l.defaultLanguageID
}

func (l *Localizer) lookup(languageID int64, key string) (string, bool) {
	_, idx, _ := l.matcher.Match(l.Tag(languageID))
	if v, ok := l.bundles[idx][key]; ok && v != "" {
		return v, true
	}
	if v, ok := l.bundles[0][key]; ok && v != "" {
		return v, true
	}
	return "", false
}

var _ returns.Localizer = (*Localizer)(nil)
