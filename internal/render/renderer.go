package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"portfolio-projects/internal/locale"
	"portfolio-projects/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RetryAction is where the retry trigger posts.
const RetryAction = "/v1/projects/retry"

// staggerStep is the entrance delay added per card position.
const staggerStep = 100 * time.Millisecond

// Surface is the page region the renderer owns: the project list container
// and the loading indicator next to it.
type Surface interface {
	SetLoading(visible bool, text string)
	ReplaceProjects(fragment string) error
}

// Renderer writes LoadState to a Surface.
type Renderer struct {
	surface Surface
	locale  *locale.Locale
	tmpl    *template.Template
	logger  *slog.Logger
}

func NewRenderer(surface Surface, l *locale.Locale, logger *slog.Logger) (*Renderer, error) {
	tmpl, err := template.New("projects").Funcs(template.FuncMap{
		"position": func(i int) int { return i + 1 },
		"delay":    func(i int) template.CSS { return template.CSS(EntranceDelay(i + 1).String()) },
		"tagIcon":  tagIcon,
		"updated":  func(date string) string { return l.Text(locale.KeyUpdated, date) },
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		surface: surface,
		locale:  l,
		tmpl:    tmpl,
		logger:  logger,
	}, nil
}

// EntranceDelay is the animation delay of the card at a 1-based position.
func EntranceDelay(position int) time.Duration {
	return time.Duration(position) * staggerStep
}

// Render replaces the region's contents with the view of state.
// Rendering the same state twice leaves the same region.
func (r *Renderer) Render(state model.LoadState) error {
	switch state.Phase {
	case model.PhaseIdle:
		return nil

	case model.PhaseLoading:
		r.surface.SetLoading(true, state.Message)
		return r.surface.ReplaceProjects("")

	case model.PhaseLoaded:
		r.surface.SetLoading(false, "")
		if len(state.Cards) == 0 {
			return r.replace("empty", struct{ Title, Body string }{
				Title: r.locale.Text(locale.KeyEmptyTitle),
				Body:  r.locale.Text(locale.KeyEmptyBody),
			})
		}
		return r.replace("cards", struct{ Cards []model.DisplayCard }{Cards: state.Cards})

	case model.PhaseFailed:
		r.surface.SetLoading(false, "")
		return r.replace("failed", struct{ Title, Message, RetryAction, RetryLabel string }{
			Title:       r.locale.Text(locale.KeyErrorTitle),
			Message:     state.Message,
			RetryAction: RetryAction,
			RetryLabel:  r.locale.Text(locale.KeyRetry),
		})
	}

	return fmt.Errorf("unknown load phase %d", state.Phase)
}

func (r *Renderer) replace(name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	r.logger.Debug("Rendering project region", "view", name, "bytes", buf.Len())
	return r.surface.ReplaceProjects(buf.String())
}

func tagIcon(kind model.TagKind) string {
	switch kind {
	case model.TagStars:
		return "⭐ "
	case model.TagForks:
		return "⑂ "
	default:
		return ""
	}
}
