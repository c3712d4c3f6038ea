// Package scenarios contains built-in demo scenarios for nicorai.
package scenarios

import (
	"time"

	"github.com/nicorai/nicorai/internal/demo"
	"github.com/nicorai/nicorai/internal/keys"
)

// Tour walks through the main flow:
// - Asking a question from the landing page
// - Promoting the attached view to fullscreen and coming back
// - Dismissing a view and showing it again
// - Browsing a navigable page and asking from the floating composer
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Ask, promote and dismiss views, browse pages",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Annotate("Welcome to nicorai"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Ask about services"),
		demo.Ask("What services do you offer?"),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Open the attached view fullscreen"),
		demo.KeyWithDesc(keys.CtrlF, "Promote view"),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Back to the conversation"),
		demo.KeyWithDesc(keys.Escape, "Close view"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Charts come along too"),
		demo.Ask("Show me a chart of project impact"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Dismiss the view"),
		demo.KeyWithDesc(keys.CtrlD, "Dismiss view"),
		demo.Wait(1 * time.Second),

		demo.Annotate("And bring it back"),
		demo.KeyWithDesc(keys.CtrlR, "Reopen view"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Browse a page"),
		demo.Open("technologies"),
		demo.Wait(1500 * time.Millisecond),

		demo.Annotate("Keep chatting over the page"),
		demo.Ask("Tell me about your case studies"),
		demo.Wait(2 * time.Second),
	},
}

// Compact shows the narrow layout where the sidebar becomes a drawer.
var Compact = &demo.Scenario{
	Name:        "compact",
	Description: "Narrow terminal with the sidebar drawer",
	Width:       80,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Focus: "sidebar",
	},
	Steps: []demo.Step{
		demo.Annotate("The sidebar covers the content"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Pick a page"),
		demo.Open("about"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Widen the terminal"),
		demo.Resize(130, 30),
		demo.Wait(1 * time.Second),

		demo.Annotate("Ask a question"),
		demo.Ask("hello"),
		demo.Wait(1500 * time.Millisecond),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Tour,
		Compact,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
