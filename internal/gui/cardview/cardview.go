// Package cardview provides the flippable flashcard widget. Its only state is
// the card it shows and which side faces up; navigation lives elsewhere.
package cardview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/glossyflash/internal/deck"
)

// CardView shows the term of a flashcard and flips to its definition and
// usage example when tapped
type CardView struct {
	widget.BaseWidget

	card    deck.Flashcard
	flipped bool

	// OnFlip is called after every flip with the new side
	OnFlip func(flipped bool)
}

// New creates an empty card view
func New() *CardView {
	c := &CardView{}
	c.ExtendBaseWidget(c)
	return c
}

// SetCard shows card front side up. Setting the card that is already shown
// keeps the current side.
func (c *CardView) SetCard(card deck.Flashcard) {
	if card.ID != c.card.ID {
		c.flipped = false
	}
	c.card = card
	c.Refresh()
}

// Card returns the card being shown
func (c *CardView) Card() deck.Flashcard {
	return c.card
}

// Flipped reports whether the definition side is up
func (c *CardView) Flipped() bool {
	return c.flipped
}

// Flip turns the card over
func (c *CardView) Flip() {
	c.flipped = !c.flipped
	c.Refresh()
	if c.OnFlip != nil {
		c.OnFlip(c.flipped)
	}
}

// Reset turns the card front side up
func (c *CardView) Reset() {
	if c.flipped {
		c.flipped = false
		c.Refresh()
	}
}

// Tapped implements fyne.Tappable
func (c *CardView) Tapped(*fyne.PointEvent) {
	c.Flip()
}

// Cursor shows a pointer so the card reads as clickable
func (c *CardView) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget
func (c *CardView) CreateRenderer() fyne.WidgetRenderer {
	r := &cardRenderer{
		view:       c,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		side:       widget.NewLabel(""),
		primary:    widget.NewLabel(""),
		context:    widget.NewLabel(""),
		hint:       widget.NewLabel(""),
	}
	r.background.CornerRadius = theme.InputRadiusSize() * 2

	r.side.Alignment = fyne.TextAlignCenter
	r.side.Importance = widget.LowImportance
	r.primary.Alignment = fyne.TextAlignCenter
	r.primary.Wrapping = fyne.TextWrapWord
	r.primary.TextStyle = fyne.TextStyle{Bold: true}
	r.context.Alignment = fyne.TextAlignCenter
	r.context.Wrapping = fyne.TextWrapWord
	r.context.TextStyle = fyne.TextStyle{Italic: true}
	r.hint.Alignment = fyne.TextAlignCenter
	r.hint.Importance = widget.LowImportance

	r.content = container.NewStack(
		r.background,
		container.NewPadded(container.NewBorder(
			r.side, r.hint, nil, nil,
			container.NewVBox(layout.NewSpacer(), r.primary, r.context, layout.NewSpacer()),
		)),
	)
	r.Refresh()
	return r
}

type cardRenderer struct {
	view       *CardView
	background *canvas.Rectangle
	side       *widget.Label
	primary    *widget.Label
	context    *widget.Label
	hint       *widget.Label
	content    *fyne.Container
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.content.MinSize().Max(fyne.NewSize(320, 220))
}

func (r *cardRenderer) Refresh() {
	card := r.view.card

	if r.view.flipped {
		r.side.SetText("DEFINITION")
		r.primary.SetText(card.Definition)
		if card.HasContext() {
			r.context.SetText("\"" + card.Context + "\"")
			r.context.Show()
		} else {
			r.context.SetText("")
			r.context.Hide()
		}
		r.hint.SetText("Click to see term")
		r.background.FillColor = theme.Color(theme.ColorNameHover)
	} else {
		r.side.SetText("TERM")
		r.primary.SetText(card.Term)
		r.context.SetText("")
		r.context.Hide()
		r.hint.SetText("Click to reveal")
		r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	}

	r.background.Refresh()
	r.content.Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *cardRenderer) Destroy() {}
