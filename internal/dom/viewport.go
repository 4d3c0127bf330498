package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"portfolio-projects/internal/model"
)

// HeaderHeight is the fixed header's height, declared as data-height.
func (d *Document) HeaderHeight() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return parseFloatAttr(d.header, "data-height")
}

// OffsetTop reports the declared data-offset-top of the element with id.
func (d *Document) OffsetTop(id string) (float64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := findByID(d.root, id)
	if n == nil {
		return 0, false
	}
	return parseFloatAttr(n, "data-offset-top"), true
}

func (d *Document) ScrollTo(top float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scrollTop = top
}

func (d *Document) PushState(hash string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.location = hash
}

// BindAnchors marks the intercepted links so the presentation layer scrolls
// them smoothly, stopping margin pixels below the header.
func (d *Document) BindAnchors(hrefs []string, margin float64) {
	bound := make(map[string]bool, len(hrefs))
	for _, h := range hrefs {
		bound[h] = true
	}
	offset := strconv.FormatFloat(d.HeaderHeight()+margin, 'f', -1, 64)

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range d.anchors {
		if bound[getAttr(n, "href")] {
			setAttr(n, "data-smooth-scroll", "")
			setAttr(n, "data-scroll-offset", offset)
		}
	}
}

// PrepareBars resets each bar to zero width and records its target and the
// visible fraction of the skills region that starts the fill.
func (d *Document) PrepareBars(bars []model.SkillBar, threshold float64) {
	th := strconv.FormatFloat(threshold, 'f', -1, 64)

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, b := range bars {
		n := d.bar(b.Index)
		if n == nil {
			continue
		}
		setAttr(n, "data-target-percent", strconv.Itoa(b.TargetPercent))
		setAttr(n, "style", "width: 0")
		setAttr(n, "data-fill-threshold", th)
	}
}

// AnimateBars fills each bar to its target width.
func (d *Document) AnimateBars(bars []model.SkillBar) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, b := range bars {
		n := d.bar(b.Index)
		if n == nil {
			continue
		}
		setAttr(n, "style", "width: "+strconv.Itoa(b.TargetPercent)+"%")
		if !hasClass(n, "is-filled") {
			setAttr(n, "class", strings.TrimSpace(getAttr(n, "class")+" is-filled"))
		}
	}
}

func (d *Document) bar(i int) *html.Node {
	if i < 0 || i >= len(d.bars) {
		return nil
	}
	return d.bars[i]
}
