package page

import (
	"regexp"
	"strconv"

	"portfolio-projects/internal/model"
)

// skillVisibilityThreshold is the visible fraction of the skills region that starts the fill.
const skillVisibilityThreshold = 0.5

var widthPattern = regexp.MustCompile(`width:\s*(\d+)%`)

// BarAnimator is the presentation layer for skill bars.
type BarAnimator interface {
	PrepareBars(bars []model.SkillBar, threshold float64)
	AnimateBars(bars []model.SkillBar)
}

// ParseTargetPercent reads the target width from a bar's declared style,
// e.g. "width: 85%". Values above 100 are clamped.
func ParseTargetPercent(style string) (int, bool) {
	m := widthPattern.FindStringSubmatch(style)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return min(n, 100), true
}

// ObserveSkills receives the visible fraction of the skills region. The
// first report at or above the threshold fills every bar; later ones do nothing.
func (c *Controller) ObserveSkills(ratio float64) {
	c.mu.Lock()
	if !c.started || c.barsAnimated || ratio < skillVisibilityThreshold {
		c.mu.Unlock()
		return
	}
	c.barsAnimated = true
	bars := c.bars
	c.mu.Unlock()

	c.logger.Debug("Animating skill bars", "count", len(bars))
	c.deps.Bars.AnimateBars(bars)
}

// bindSkills must be called with c.mu held.
func (c *Controller) bindSkills() {
	c.bars = make([]model.SkillBar, 0, len(c.deps.SkillBars))
	for _, b := range c.deps.SkillBars {
		target, ok := ParseTargetPercent(b.Style)
		if !ok {
			c.logger.Warn("Skill bar has no declared width", "index", b.Index, "skill", b.Name)
			continue
		}
		b.TargetPercent = target
		c.bars = append(c.bars, b)
	}
	c.deps.Bars.PrepareBars(c.bars, skillVisibilityThreshold)
}
