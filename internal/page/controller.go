package page

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"portfolio-projects/internal/card"
	custom_errors "portfolio-projects/internal/errors"
	"portfolio-projects/internal/locale"
	"portfolio-projects/internal/model"
	"portfolio-projects/internal/projects"
)

var (
	ErrAlreadyStarted  = errors.New("page controller already initialized")
	ErrRetryNotAllowed = errors.New("retry is only allowed once a load has finished")
	ErrRetryThrottled  = errors.New("retry requested too soon after the previous one")
)

// StateRenderer draws a LoadState into the project region.
type StateRenderer interface {
	Render(state model.LoadState) error
}

// Deps are the collaborators a Controller drives. All are required except
// RetryLimiter, which disables retry throttling when nil.
type Deps struct {
	Fetcher      projects.Fetcher
	Renderer     StateRenderer
	Builder      *card.Builder
	Locale       *locale.Locale
	Viewport     Viewport
	Bars         BarAnimator
	Anchors      []string
	SkillBars    []model.SkillBar
	Username     string
	RetryLimiter *rate.Limiter
	Logger       *slog.Logger
}

// Controller owns the project load cycle and the page's scroll and skill
// behaviour. The state moves NotStarted -> Loading -> Loaded|Failed, and back
// to Loading only through Retry.
type Controller struct {
	deps   Deps
	logger *slog.Logger

	mu           sync.Mutex
	ctx          context.Context
	started      bool
	state        model.LoadState
	generation   uint64
	cancel       context.CancelFunc
	done         chan struct{}
	bound        map[string]bool
	bars         []model.SkillBar
	barsAnimated bool
}

func New(deps Deps) (*Controller, error) {
	switch {
	case deps.Fetcher == nil:
		return nil, errors.New("page: fetcher is required")
	case deps.Renderer == nil:
		return nil, errors.New("page: renderer is required")
	case deps.Builder == nil:
		return nil, errors.New("page: card builder is required")
	case deps.Locale == nil:
		return nil, errors.New("page: locale is required")
	case deps.Viewport == nil:
		return nil, errors.New("page: viewport is required")
	case deps.Bars == nil:
		return nil, errors.New("page: bar animator is required")
	case deps.Logger == nil:
		return nil, errors.New("page: logger is required")
	}

	return &Controller{
		deps:   deps,
		logger: deps.Logger.With("username", deps.Username),
		state:  model.Idle(),
	}, nil
}

// Init binds anchor interception and the skill bars, then starts the first
// load. ctx bounds every fetch the controller issues.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.ctx = ctx

	c.bindAnchors()
	c.bindSkills()

	c.logger.Info("Page controller initialized", "anchors", len(c.bound), "skill_bars", len(c.bars))
	c.startCycle(locale.KeyConnecting)
	return nil
}

// Retry reloads the projects after a finished load.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || (c.state.Phase != model.PhaseLoaded && c.state.Phase != model.PhaseFailed) {
		return ErrRetryNotAllowed
	}
	if c.deps.RetryLimiter != nil && !c.deps.RetryLimiter.Allow() {
		return ErrRetryThrottled
	}

	c.logger.Info("Retrying project load")
	c.startCycle(locale.KeyRetrying)
	return nil
}

// State returns a snapshot of the current load state.
func (c *Controller) State() model.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Cards != nil {
		s.Cards = append([]model.DisplayCard(nil), s.Cards...)
	}
	return s
}

// Wait blocks until the current load cycle has finished.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels an in-flight load, discards its result and waits for it.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	done := c.done
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// startCycle must be called with c.mu held.
func (c *Controller) startCycle(textKey string) {
	c.generation++
	gen := c.generation
	cycleCtx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel
	done := make(chan struct{})
	c.done = done

	c.setState(model.Loading(c.deps.Locale.Text(textKey)))

	logger := c.logger.With("cycle", uuid.NewString(), "generation", gen)
	go c.runCycle(cycleCtx, cancel, gen, done, logger)
}

func (c *Controller) runCycle(ctx context.Context, cancel context.CancelFunc, gen uint64, done chan struct{}, logger *slog.Logger) {
	defer close(done)
	defer cancel()

	logger.Info("Loading projects")
	cards, err := projects.Load(ctx, c.deps.Fetcher, c.deps.Builder, c.deps.Username)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		logger.Debug("Discarding result of superseded load cycle")
		return
	}
	c.cancel = nil

	if err != nil {
		logger.Error("Failed to load projects", "error", err)
		c.setState(model.Failed(c.userMessage(err)))
		return
	}

	logger.Info("Projects loaded", "count", len(cards))
	c.setState(model.Loaded(cards))
}

// setState must be called with c.mu held.
func (c *Controller) setState(s model.LoadState) {
	c.state = s
	if err := c.deps.Renderer.Render(s); err != nil {
		c.logger.Error("Failed to render project region", "phase", s.Phase.String(), "error", err)
	}
}

func (c *Controller) userMessage(err error) string {
	var fetchErr *custom_errors.FetchError
	if !errors.As(err, &fetchErr) {
		return c.deps.Locale.Text(locale.KeyErrUnknown)
	}
	switch fetchErr.Kind {
	case custom_errors.KindHTTPStatus:
		return c.deps.Locale.Text(locale.KeyErrStatus, fetchErr.StatusCode)
	case custom_errors.KindDecode:
		return c.deps.Locale.Text(locale.KeyErrDecode)
	default:
		return c.deps.Locale.Text(locale.KeyErrNetwork)
	}
}
