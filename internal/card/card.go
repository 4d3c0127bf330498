package card

import (
	"strings"

	"portfolio-projects/internal/locale"
	"portfolio-projects/internal/model"
)

// Builder turns repository records into display cards for one locale.
type Builder struct {
	locale *locale.Locale
}

func NewBuilder(l *locale.Locale) *Builder {
	return &Builder{locale: l}
}

// Build creates the card for a single record. It never fails and always
// yields the same card for the same record.
func (b *Builder) Build(r model.RepositoryRecord) model.DisplayCard {
	card := model.DisplayCard{
		Title:       r.Name,
		Description: b.description(r),
		Tags:        b.tags(r),
		Primary: model.Link{
			Label: b.locale.Text(locale.KeyViewOnGitHub),
			Href:  r.URL,
		},
		Updated: b.locale.FormatDate(r.UpdatedAt),
	}
	if homepage := strings.TrimSpace(r.Homepage); homepage != "" {
		card.Demo = &model.Link{
			Label: b.locale.Text(locale.KeyViewDemo),
			Href:  homepage,
		}
	}
	return card
}

// BuildAll builds cards in record order.
func (b *Builder) BuildAll(records []model.RepositoryRecord) []model.DisplayCard {
	cards := make([]model.DisplayCard, 0, len(records))
	for _, r := range records {
		cards = append(cards, b.Build(r))
	}
	return cards
}

func (b *Builder) description(r model.RepositoryRecord) string {
	if strings.TrimSpace(r.Description) == "" {
		return b.locale.Text(locale.KeyNoDescription)
	}
	return r.Description
}

func (b *Builder) tags(r model.RepositoryRecord) []model.Tag {
	tags := make([]model.Tag, 0, 3)
	if r.Language != "" {
		tags = append(tags, model.Tag{Kind: model.TagLanguage, Label: r.Language})
	}
	if r.StarsCount > 0 {
		tags = append(tags, model.Tag{Kind: model.TagStars, Label: b.locale.FormatCount(r.StarsCount)})
	}
	if r.ForksCount > 0 {
		tags = append(tags, model.Tag{Kind: model.TagForks, Label: b.locale.FormatCount(r.ForksCount)})
	}
	return tags
}
