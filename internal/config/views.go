package config

import (
	"slices"
)

// NavView is a navigable view listed in the sidebar. Body is markdown.
type NavView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// DefaultViews returns the built-in pages
func DefaultViews() []NavView {
	return []NavView{
		{
			ID:    "services",
			Title: "Services",
			Body: `# Services

- **Custom AI Agents**: automate tasks and analyze data with tailored AI solutions.
- **AR/VR Experiences**: immersive simulations for training or entertainment.
- **Rapid MVP Development**: functional apps in 4 to 12 weeks.`,
		},
		{
			ID:    "technologies",
			Title: "Technologies",
			Body: `# Technologies

| Technology | Purpose |
|---|---|
| Python, TensorFlow, PyTorch | AI/ML development |
| JavaScript, React | Web applications |
| Unity, Unreal Engine | AR/VR solutions |`,
		},
		{
			ID:    "case-studies",
			Title: "Case Studies",
			Body: `# Case Studies

## Retail Assistant
A support agent that resolved 60% of tickets without escalation.

## Factory Training VR
Immersive onboarding that halved training time.`,
		},
		{
			ID:    "about",
			Title: "About",
			Body: `# About

We are a small studio building AI agents, immersive experiences and fast prototypes.
Ask the assistant anything about our work.`,
		},
		{
			ID:    "contact",
			Title: "Contact",
			Body: "# Contact\n\nWrite to `hello@nicorai.example` and we will get back within two business days.",
		},
	}
}

// GetViews returns a copy of the navigable views
func (c *Config) GetViews() []NavView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.Views)
}

// GetView returns a copy of the view with the given ID, or nil
func (c *Config) GetView(id string) *NavView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.Views {
		if c.Views[i].ID == id {
			v := c.Views[i]
			return &v
		}
	}
	return nil
}

// AddView appends a view. Returns false if the ID is empty, reserved or taken.
func (c *Config) AddView(v NavView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v.ID == "" || v.ID == ReservedViewID {
		return false
	}
	for _, existing := range c.Views {
		if existing.ID == v.ID {
			return false
		}
	}
	c.Views = append(c.Views, v)
	return true
}

// RemoveView removes a view by ID.
// Returns true if the view was found and removed, false otherwise.
func (c *Config) RemoveView(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, v := range c.Views {
		if v.ID == id {
			c.Views = append(c.Views[:i], c.Views[i+1:]...)
			return true
		}
	}
	return false
}
