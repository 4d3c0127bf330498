// Package locale holds the display convention used for project cards:
// date layout, number grouping and every user-facing string.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	KeyNoDescription = "no_description"
	KeyViewOnGitHub  = "view_on_github"
	KeyViewDemo      = "view_demo"
	KeyUpdated       = "updated"
	KeyConnecting    = "connecting"
	KeyRetrying      = "retrying"
	KeyEmptyTitle    = "empty_title"
	KeyEmptyBody     = "empty_body"
	KeyErrorTitle    = "error_title"
	KeyRetry         = "retry"
	KeyErrStatus     = "err_status"
	KeyErrNetwork    = "err_network"
	KeyErrDecode     = "err_decode"
	KeyErrUnknown    = "err_unknown"
)

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
	language.BritishEnglish,
}

// dateLayout is day/month/year for every supported locale.
const dateLayout = "02/01/2006"

var portuguese = map[string]string{
	KeyNoDescription: "Projeto em desenvolvimento",
	KeyViewOnGitHub:  "Ver no GitHub",
	KeyViewDemo:      "Ver Demo",
	KeyUpdated:       "Atualizado: %s",
	KeyConnecting:    "Conectando ao GitHub...",
	KeyRetrying:      "Tentando novamente...",
	KeyEmptyTitle:    "Nenhum projeto encontrado",
	KeyEmptyBody:     "Os projetos serão exibidos aqui quando estiverem no GitHub.",
	KeyErrorTitle:    "Erro ao carregar projetos do GitHub",
	KeyRetry:         "Tentar novamente",
	KeyErrStatus:     "Erro %d: Não foi possível carregar projetos",
	KeyErrNetwork:    "Não foi possível conectar ao GitHub",
	KeyErrDecode:     "O GitHub respondeu com dados inválidos",
	KeyErrUnknown:    "Não foi possível carregar projetos",
}

var english = map[string]string{
	KeyNoDescription: "Project in development",
	KeyViewOnGitHub:  "View on GitHub",
	KeyViewDemo:      "View Demo",
	KeyUpdated:       "Updated: %s",
	KeyConnecting:    "Connecting to GitHub...",
	KeyRetrying:      "Trying again...",
	KeyEmptyTitle:    "No projects found",
	KeyEmptyBody:     "Projects will show up here once they are on GitHub.",
	KeyErrorTitle:    "Failed to load projects from GitHub",
	KeyRetry:         "Try again",
	KeyErrStatus:     "Error %d: could not load projects",
	KeyErrNetwork:    "Could not connect to GitHub",
	KeyErrDecode:     "GitHub sent an invalid response",
	KeyErrUnknown:    "Could not load projects",
}

// Locale formats dates, counts and messages for one language tag.
type Locale struct {
	tag     language.Tag
	loc     *time.Location
	printer *message.Printer
}

// New builds a Locale for a BCP 47 tag. The tag must match one of the
// supported conventions; it is never inferred from the environment.
func New(tag string, loc *time.Location) (*Locale, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}

	_, idx, confidence := language.NewMatcher(supported).Match(parsed)
	if confidence < language.High {
		return nil, fmt.Errorf("unsupported locale %q", tag)
	}
	matched := supported[idx]

	cat, err := buildCatalog()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Locale{
		tag:     matched,
		loc:     loc,
		printer: message.NewPrinter(matched, message.Catalog(cat)),
	}, nil
}

func buildCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for _, tag := range supported {
		texts := english
		if tag == language.BrazilianPortuguese {
			texts = portuguese
		}
		for key, text := range texts {
			if err := b.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("failed to register message %q for %s: %w", key, tag, err)
			}
		}
	}
	return b, nil
}

// Tag returns the matched language tag.
func (l *Locale) Tag() language.Tag {
	return l.tag
}

// FormatDate renders t as a two-digit day and month with a four-digit year.
func (l *Locale) FormatDate(t time.Time) string {
	return t.In(l.loc).Format(dateLayout)
}

// FormatCount renders n with the locale's digit grouping.
func (l *Locale) FormatCount(n int) string {
	return l.printer.Sprintf("%d", n)
}

// Text looks up a message and applies args to it.
func (l *Locale) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
