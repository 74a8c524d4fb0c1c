package gui

import "codeberg.org/snonux/glossyflash/internal/session"

func (a *Application) onGenerate() {
	if !a.session.Model().CanGenerate() {
		return
	}
	a.window.Canvas().Unfocus()
	a.dispatch(session.GenerateRequested{})
}

func (a *Application) onPrevious() {
	a.dispatch(session.PreviousCard{})
}

func (a *Application) onNext() {
	a.dispatch(session.NextCard{})
}

func (a *Application) onShuffle() {
	a.dispatch(session.ShuffleDeck{})
	a.updateStatus("Deck shuffled")
}

func (a *Application) onFlip() {
	if _, ok := a.session.Model().Current(); ok {
		a.cardView.Flip()
	}
}

func (a *Application) onNewDeck() {
	a.dispatch(session.NewDeck{})
	a.window.Canvas().Focus(a.glossEntry)
}
