package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/app"
	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/logger"
	"github.com/nicorai/nicorai/internal/ui"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and keystroke
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// SettleWindow is how long the executor waits for follow-up messages
	// after each input before moving on (default: 50ms)
	SettleWindow time.Duration

	// ReplyTimeout bounds how long an Ask step waits for its reply (default: 5s)
	ReplyTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		SettleWindow:     50 * time.Millisecond,
		ReplyTimeout:     5 * time.Second,
	}
}

// maxSettle caps a single settle so a steady stream of ticks cannot stall a run
const maxSettle = 2 * time.Second

// ErrReplyTimeout is returned when an Ask step gets no reply in time.
var ErrReplyTimeout = errors.New("timed out waiting for reply")

// Executor runs demo scenarios and captures frames. Commands returned by the
// model run in the background the way the Bubble Tea runtime runs them; their
// messages are fed back into the model on the executor's goroutine only.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string

	msgs chan tea.Msg
	done chan struct{}

	log *slog.Logger
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	defaults := DefaultExecutorConfig()
	if cfg.SettleWindow <= 0 {
		cfg.SettleWindow = defaults.SettleWindow
	}
	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = defaults.ReplyTimeout
	}
	return &Executor{
		config: cfg,
		frames: []Frame{},
		log:    logger.WithComponent("demo"),
	}
}

// Model exposes the driven model so callers can inspect it after Run.
// Nil before Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Cleanup stops background commands and releases the model's subscription.
func (e *Executor) Cleanup() {
	if e.done != nil {
		close(e.done)
		e.done = nil
	}
	if e.model != nil {
		e.model.Close()
	}
}

// Run executes a scenario and returns the captured frames. The model stays
// inspectable through Model until Cleanup.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	e.log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
		}
	}

	return e.frames, nil
}

// setup builds the model from the scenario setup.
func (e *Executor) setup(scenario *Scenario) error {
	cfg, err := setupConfig(scenario.Setup)
	if err != nil {
		return err
	}

	e.msgs = make(chan tea.Msg, 64)
	e.done = make(chan struct{})
	e.frames = []Frame{}
	e.model = app.New(cfg, conversation.NewService(conversation.NewKnowledgeBase()), "demo")

	e.run(e.model.Init())
	e.dispatch(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	if scenario.Setup.Focus == "sidebar" {
		e.dispatch(keyPress(keys.Tab))
	}
	e.settle()
	return nil
}

// setupConfig builds an in-memory config; demos never touch the user's file.
func setupConfig(setup *ScenarioSetup) (*config.Config, error) {
	cfg := config.Default()
	if len(setup.Views) > 0 {
		for _, v := range cfg.GetViews() {
			cfg.RemoveView(v.ID)
		}
		for _, v := range setup.Views {
			if !cfg.AddView(v) {
				return nil, fmt.Errorf("invalid view %q", v.ID)
			}
		}
	}
	cfg.SetSidebarExpanded(!setup.SidebarCollapsed)
	if setup.Theme != "" {
		cfg.SetTheme(setup.Theme)
	}
	return cfg, cfg.Validate()
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		// While a reply is outstanding, capture animated frames of the spinner
		if e.model.IsWaiting() && step.Duration >= 300*time.Millisecond {
			e.captureAnimatedFrames(index, step.Duration, 300*time.Millisecond)
		} else {
			e.captureFrame(index, step.Duration)
		}

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		e.typeText(index, step.Text)

	case StepAsk:
		if e.model.Focus() == app.FocusSidebar {
			e.sendKey(keys.Tab)
		}
		e.typeText(index, step.Text)
		// no settle here: the reply may land before waiting could be checked
		e.dispatch(keyPress(keys.Enter))
		if !e.model.IsWaiting() {
			return fmt.Errorf("message %q was not sent", step.Text)
		}
		if err := e.waitForReply(); err != nil {
			return err
		}
		// Always capture after the reply lands
		e.captureFrame(index, 200*time.Millisecond)

	case StepOpen:
		e.dispatch(ui.NavSelectedMsg{ViewID: step.ViewID})
		e.settle()
		e.captureFrame(index, 300*time.Millisecond)

	case StepResize:
		e.dispatch(tea.WindowSizeMsg{Width: step.Width, Height: step.Height})
		e.settle()
		e.captureFrame(index, 300*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		if e.model.IsWaiting() {
			e.sendTickMessages()
		}
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

func (e *Executor) typeText(index int, text string) {
	for _, ch := range text {
		e.sendKey(string(ch))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.TypeDelay)
		}
	}
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// captureAnimatedFrames captures multiple frames with spinner animation.
func (e *Executor) captureAnimatedFrames(stepIndex int, totalDuration, frameInterval time.Duration) {
	numFrames := max(int(totalDuration/frameInterval), 1)
	delayPerFrame := totalDuration / time.Duration(numFrames)

	for range numFrames {
		e.sendTickMessages()
		e.captureFrame(stepIndex, delayPerFrame)
	}
}

// sendTickMessages advances the waiting spinner by one frame. The returned
// re-arm command is dropped; the executor drives the animation itself.
func (e *Executor) sendTickMessages() {
	result, _ := e.model.Update(ui.StopwatchTickMsg(time.Now()))
	e.model = result.(*app.Model)
}

// sendKey sends a key press and lets its commands settle.
func (e *Executor) sendKey(key string) {
	e.dispatch(keyPress(key))
	e.settle()
}

// dispatch delivers msg to the model and starts the returned command.
func (e *Executor) dispatch(msg tea.Msg) {
	if _, ok := msg.(tea.QuitMsg); ok {
		return
	}
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	e.run(cmd)
}

// run executes cmd in the background and queues its message. Batches are
// flattened so every command runs concurrently.
func (e *Executor) run(cmd tea.Cmd) {
	e.runUntil(cmd, e.done)
}

func (e *Executor) runUntil(cmd tea.Cmd, done <-chan struct{}) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				e.runUntil(c, done)
			}
			return
		}
		if msg == nil {
			return
		}
		select {
		case e.msgs <- msg:
		case <-done:
		}
	}()
}

// settle drains queued messages until none arrives for SettleWindow.
func (e *Executor) settle() {
	deadline := time.After(maxSettle)
	for {
		select {
		case msg := <-e.msgs:
			e.dispatch(msg)
		case <-time.After(e.config.SettleWindow):
			return
		case <-deadline:
			e.log.Warn("settle cut short")
			return
		}
	}
}

// waitForReply drains messages until the outstanding reply has been handled.
func (e *Executor) waitForReply() error {
	timeout := time.After(e.config.ReplyTimeout)
	for e.model.IsWaiting() {
		select {
		case msg := <-e.msgs:
			e.dispatch(msg)
		case <-timeout:
			return ErrReplyTimeout
		}
	}
	e.settle()
	return nil
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space", " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlB, keys.CtrlC, keys.CtrlD, keys.CtrlF, keys.CtrlN,
		keys.CtrlO, keys.CtrlR, keys.CtrlX, keys.CtrlY:
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
