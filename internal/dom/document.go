// Package dom adapts an authored portfolio page, parsed with x/net/html,
// to the surfaces the renderer and page controller drive.
package dom

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"portfolio-projects/internal/model"
)

const (
	ProjectListID     = "my-project-list"
	LoadingID         = "loading"
	SkillBarClass     = "skill-level"
	AnimationStyleID  = "project-card-animation"
	BehaviourScriptID = "portfolio-behaviour"
)

// behaviourJS fills the skill bars and scrolls bound anchors in the browser,
// driven by the attributes PrepareBars and BindAnchors write.
//
//go:embed behaviour.js
var behaviourJS string

const animationCSS = `
@keyframes fadeInUp {
    from { opacity: 0; transform: translateY(20px); }
    to { opacity: 1; transform: translateY(0); }
}
.project-card { animation: fadeInUp 0.5s ease-out both; }
`

// ErrMissingElement is returned when the page lacks an element the enhancement needs.
var ErrMissingElement = errors.New("required element not found")

// Document is a parsed page. All methods are safe for concurrent use.
type Document struct {
	mu sync.RWMutex

	root    *html.Node
	list    *html.Node
	loading *html.Node
	header  *html.Node
	bars    []*html.Node
	anchors []*html.Node

	location  string
	scrollTop float64
}

// Parse reads a page and locates the project region, loading indicator,
// header, skill bars and in-page anchors.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	d := &Document{root: root}
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch id := getAttr(n, "id"); {
		case id == ProjectListID:
			d.list = n
		case id == LoadingID:
			d.loading = n
		}
		if n.DataAtom == atom.Header && d.header == nil {
			d.header = n
		}
		if hasClass(n, SkillBarClass) {
			d.bars = append(d.bars, n)
		}
		if n.DataAtom == atom.A && strings.HasPrefix(getAttr(n, "href"), "#") {
			d.anchors = append(d.anchors, n)
		}
	})

	if d.list == nil {
		return nil, fmt.Errorf("#%s: %w", ProjectListID, ErrMissingElement)
	}
	if d.loading == nil {
		return nil, fmt.Errorf("#%s: %w", LoadingID, ErrMissingElement)
	}
	d.injectAnimationStyle()
	d.injectBehaviourScript()

	return d, nil
}

// Render writes the current page.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return html.Render(w, d.root)
}

// SetLoading shows or hides the loading indicator.
func (d *Document) SetLoading(visible bool, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !visible {
		setAttr(d.loading, "hidden", "")
		return
	}
	removeAttr(d.loading, "hidden")
	removeChildren(d.loading)
	d.loading.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// ReplaceProjects clears the project list and fills it with fragment.
func (d *Document) ReplaceProjects(fragment string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	nodes, err := html.ParseFragment(strings.NewReader(fragment), d.list)
	if err != nil {
		return fmt.Errorf("failed to parse project fragment: %w", err)
	}
	removeChildren(d.list)
	for _, n := range nodes {
		d.list.AppendChild(n)
	}
	return nil
}

// SkillBars lists the declared skill bars in document order. A bar already
// prepared by an earlier pass reports its recorded target as its width.
func (d *Document) SkillBars() []model.SkillBar {
	d.mu.RLock()
	defer d.mu.RUnlock()

	bars := make([]model.SkillBar, 0, len(d.bars))
	for i, n := range d.bars {
		style := getAttr(n, "style")
		if target := getAttr(n, "data-target-percent"); target != "" {
			style = "width: " + target + "%"
		}
		bars = append(bars, model.SkillBar{
			Index: i,
			Name:  getAttr(n, "data-skill"),
			Style: style,
		})
	}
	return bars
}

// InPageAnchors returns the href of every link pointing inside the page.
func (d *Document) InPageAnchors() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	hrefs := make([]string, 0, len(d.anchors))
	for _, n := range d.anchors {
		hrefs = append(hrefs, getAttr(n, "href"))
	}
	return hrefs
}

// Location is the hash last pushed to history.
func (d *Document) Location() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.location
}

// ScrollTop is the position last scrolled to.
func (d *Document) ScrollTop() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.scrollTop
}

func (d *Document) injectAnimationStyle() {
	if findByID(d.root, AnimationStyleID) != nil {
		return
	}
	head := findFirst(d.root, atom.Head)
	if head == nil {
		return
	}
	style := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "id", Val: AnimationStyleID}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: animationCSS})
	head.AppendChild(style)
}

func (d *Document) injectBehaviourScript() {
	if findByID(d.root, BehaviourScriptID) != nil {
		return
	}
	body := findFirst(d.root, atom.Body)
	if body == nil {
		return
	}
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "id", Val: BehaviourScriptID}},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: behaviourJS})
	body.AppendChild(script)
}

func parseFloatAttr(n *html.Node, key string) float64 {
	if n == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(getAttr(n, key)), 64)
	if err != nil {
		return 0
	}
	return v
}
