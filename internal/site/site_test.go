package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-projects/internal/dom"
)

func TestDefaultPage(t *testing.T) {
	d, err := dom.Parse(DefaultPage())
	require.NoError(t, err)

	assert.Equal(t, []string{"#", "#about", "#skills", "#projects", "#contact"}, d.InPageAnchors())
	assert.Equal(t, 70.0, d.HeaderHeight())
	assert.Len(t, d.SkillBars(), 4)

	top, ok := d.OffsetTop("projects")
	assert.True(t, ok)
	assert.Equal(t, 980.0, top)
}
