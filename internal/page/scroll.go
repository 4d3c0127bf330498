package page

import "strings"

// scrollMargin is the gap kept between the fixed header and a scrolled-to section.
const scrollMargin = 20.0

// Viewport is the page surface anchor navigation acts on.
type Viewport interface {
	HeaderHeight() float64
	OffsetTop(id string) (float64, bool)
	ScrollTo(top float64)
	PushState(hash string)
	BindAnchors(hrefs []string, margin float64)
}

// ScrollTarget is where to scroll so a section at offsetTop sits just below
// a fixed header of headerHeight.
func ScrollTarget(offsetTop, headerHeight float64) float64 {
	return max(offsetTop-headerHeight-scrollMargin, 0)
}

// ClickAnchor handles a click on a link. It reports whether the click was
// intercepted, in which case the default jump must not happen.
func (c *Controller) ClickAnchor(href string) bool {
	c.mu.Lock()
	bound := c.bound[href]
	c.mu.Unlock()

	if !bound {
		return false
	}
	if href == "#" {
		return true
	}

	top, ok := c.deps.Viewport.OffsetTop(strings.TrimPrefix(href, "#"))
	if !ok {
		c.logger.Debug("Anchor target not found", "href", href)
		return true
	}
	c.deps.Viewport.ScrollTo(ScrollTarget(top, c.deps.Viewport.HeaderHeight()))
	c.deps.Viewport.PushState(href)
	return true
}

// bindAnchors must be called with c.mu held.
func (c *Controller) bindAnchors() {
	c.bound = make(map[string]bool, len(c.deps.Anchors))
	hrefs := make([]string, 0, len(c.deps.Anchors))
	for _, href := range c.deps.Anchors {
		if !strings.HasPrefix(href, "#") || c.bound[href] {
			continue
		}
		c.bound[href] = true
		hrefs = append(hrefs, href)
	}
	c.deps.Viewport.BindAnchors(hrefs, scrollMargin)
}
