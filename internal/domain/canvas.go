/**
 * @description
 * This file defines the canvas document returned to the support console.
 * Intercom-style Canvas Kit responses are a flat sequence of typed component
 * blocks; each block variant is modelled as a small constructor over a single
 * Component struct so the assembler works with typed values and the JSON shape
 * is only decided here, at the boundary.
 */
package domain

// Component block types understood by the support console.
const (
	ComponentText    = "text"
	ComponentDivider = "divider"
	ComponentSpacer  = "spacer"
	ComponentButton  = "button"
	ComponentList    = "list"
	ComponentItem    = "item"
)

// Text styles accepted by the console renderer.
const (
	StyleHeader = "header"
	StyleMuted  = "muted"
	StyleError  = "error"
)

// Component is one block of a canvas. Exactly the fields relevant to the
// block's type are populated; the rest are omitted from the wire format.
type Component struct {
	Type     string      `json:"type"`
	ID       string      `json:"id,omitempty"`
	Text     string      `json:"text,omitempty"`
	Style    string      `json:"style,omitempty"`
	Label    string      `json:"label,omitempty"`
	Size     string      `json:"size,omitempty"`
	Action   *Action     `json:"action,omitempty"`
	Items    []Component `json:"items,omitempty"`
	Title    string      `json:"title,omitempty"`
	Subtitle string      `json:"subtitle,omitempty"`
}

// Action is the behaviour attached to a button or list item. Only URL actions
// are used by this integration.
type Action struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Canvas is the response envelope the console expects from the initialize and
// submit webhooks.
type Canvas struct {
	Canvas struct {
		Content struct {
			Components []Component `json:"components"`
		} `json:"content"`
	} `json:"canvas"`
}

// NewCanvas wraps an ordered component sequence in the response envelope.
func NewCanvas(components ...Component) *Canvas {
	c := &Canvas{}
	c.Canvas.Content.Components = components
	return c
}

// TextBlock builds a text component with an optional style tag.
func TextBlock(text, style string) Component {
	return Component{Type: ComponentText, Text: text, Style: style}
}

// Divider builds a horizontal rule component.
func Divider() Component {
	return Component{Type: ComponentDivider}
}

// Spacer builds a vertical gap component.
func Spacer(size string) Component {
	return Component{Type: ComponentSpacer, Size: size}
}

// ButtonBlock builds a button that opens the given URL.
func ButtonBlock(id, label, url string) Component {
	return Component{
		Type:   ComponentButton,
		ID:     id,
		Label:  label,
		Action: &Action{Type: "url", URL: url},
	}
}

// ListBlock builds a list component from pre-built item components.
func ListBlock(items []Component) Component {
	return Component{Type: ComponentList, Items: items}
}

// ListItem builds one entry of a list component, linking to the given URL.
func ListItem(id, title, subtitle, url string) Component {
	return Component{
		Type:     ComponentItem,
		ID:       id,
		Title:    title,
		Subtitle: subtitle,
		Action:   &Action{Type: "url", URL: url},
	}
}
