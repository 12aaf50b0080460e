package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Hud is the in-game text layer: phase prompts, the score readout, and
// the new-high-score banner. It is the presentation collaborator for
// both the state machine and the score tracker; every method is fire
// and forget.
type Hud struct {
	ui *ebitenui.UI

	beginPrompt    *widget.Text
	gameOverPrompt *widget.Text
	scoreText      *widget.Text
	highText       *widget.Text
	banner         *widget.Text
}

func NewHud() *Hud {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gold := color.NRGBA{R: 0xff, G: 0xd7, B: 0x40, A: 0xff}
	red := color.NRGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff}

	h := &Hud{}

	h.beginPrompt = widget.NewText(
		widget.TextOpts.Text("Press to begin", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.gameOverPrompt = widget.NewText(
		widget.TextOpts.Text("Game Over", &face, red),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.banner = widget.NewText(
		widget.TextOpts.Text("High score!", &face, gold),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.scoreText = widget.NewText(widget.TextOpts.Text("", &face, white))
	h.highText = widget.NewText(widget.TextOpts.Text("", &face, white))

	// Score in the top-left corner, best score in the top-right.
	scoreCorner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 16}),
		)),
	)
	scoreCorner.AddChild(h.scoreText)
	scoreCorner.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}

	highCorner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Right: 16}),
		)),
	)
	highCorner.AddChild(h.highText)
	highCorner.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}

	// Banner under the top edge, centered.
	bannerBar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 40}),
		)),
	)
	bannerBar.AddChild(h.banner)
	bannerBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}

	// Phase prompts in the middle of the screen.
	center := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	center.AddChild(h.beginPrompt)
	center.AddChild(h.gameOverPrompt)
	center.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(scoreCorner)
	root.AddChild(highCorner)
	root.AddChild(bannerBar)
	root.AddChild(center)

	h.ui = &ebitenui.UI{Container: root}

	// Everything starts hidden; the first transition reveals what the
	// phase needs.
	setVisible(h.beginPrompt, false)
	setVisible(h.gameOverPrompt, false)
	setVisible(h.scoreText, false)
	setVisible(h.banner, false)
	return h
}

func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (h *Hud) ShowBeginPrompt(visible bool)    { setVisible(h.beginPrompt, visible) }
func (h *Hud) ShowGameOverPrompt(visible bool) { setVisible(h.gameOverPrompt, visible) }

// ShowScore toggles the run-score readout. The best-score corner is
// deliberately one-way: the first call reveals it and it stays up
// through every later phase, including the pre-game screen where the
// run score itself is hidden.
func (h *Hud) ShowScore(visible bool) {
	setVisible(h.scoreText, visible)
	setVisible(h.highText, true)
}

func (h *Hud) SetScoreText(text string)     { h.scoreText.Label = text }
func (h *Hud) SetHighScoreText(text string) { h.highText.Label = text }

func (h *Hud) ShowNewHighScoreBanner(visible bool) { setVisible(h.banner, visible) }

func (h *Hud) Update() { h.ui.Update() }

func (h *Hud) Draw(screen *ebiten.Image) { h.ui.Draw(screen) }
