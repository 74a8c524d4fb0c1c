package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"codeberg.org/snonux/glossyflash/internal"
	"codeberg.org/snonux/glossyflash/internal/anki"
	"codeberg.org/snonux/glossyflash/internal/deck"
)

var exportFormats = []string{"APKG (Recommended)", "CSV"}

// exportRequest describes one export of the current deck
type exportRequest struct {
	APKG     bool
	DeckName string
	Dir      string
}

// path returns the file the export writes to
func (r exportRequest) path() string {
	name := internal.SanitizeFilename(r.DeckName)
	if name == "" {
		name = "glossyflash"
	}
	if r.APKG {
		return filepath.Join(r.Dir, name+".apkg")
	}
	return filepath.Join(r.Dir, name+".csv")
}

// exportDeck writes cards according to req and returns the written path
func exportDeck(cards deck.Deck, req exportRequest) (string, error) {
	outputPath := req.path()
	if req.APKG {
		if err := anki.NewAPKGWriter(req.DeckName).Write(cards, outputPath); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
		return outputPath, nil
	}
	if err := anki.WriteCSVFile(cards, outputPath, anki.DefaultCSVOptions()); err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}
	return outputPath, nil
}

func defaultExportDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(homeDir, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return homeDir
}

func (a *Application) onExport() {
	cards := a.session.Model().Deck
	if cards.Empty() {
		dialog.ShowInformation("No Cards", "Generate a deck first!", a.window)
		return
	}

	formatSelect := widget.NewSelect(exportFormats, nil)
	formatSelect.SetSelected(exportFormats[0])

	deckNameEntry := widget.NewEntry()
	deckNameEntry.SetText(a.config.DeckName)

	selectedDir := defaultExportDir()
	dirLabel := widget.NewLabel(selectedDir)
	dirButton := widget.NewButton("Browse...", func() {
		folderDialog := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			selectedDir = dir.Path()
			dirLabel.SetText(selectedDir)
		}, a.window)

		if uri, err := storage.ListerForURI(storage.NewFileURI(selectedDir)); err == nil {
			folderDialog.SetLocation(uri)
		}
		folderDialog.Show()
	})

	content := container.NewVBox(
		widget.NewLabel("Export Format:"),
		formatSelect,
		widget.NewSeparator(),
		widget.NewLabel("Deck Name:"),
		deckNameEntry,
		widget.NewSeparator(),
		widget.NewLabel("Export Directory:"),
		container.NewBorder(nil, nil, nil, dirButton, dirLabel),
	)

	d := dialog.NewCustomConfirm("Export to Anki", "Export", "Cancel", content, func(export bool) {
		if !export {
			return
		}

		req := exportRequest{
			APKG:     formatSelect.Selected == exportFormats[0],
			DeckName: deckNameEntry.Text,
			Dir:      selectedDir,
		}
		if req.DeckName == "" {
			req.DeckName = a.config.DeckName
		}

		outputPath, err := exportDeck(cards, req)
		if err != nil {
			a.logger.Error("Export failed", zap.Error(err))
			dialog.ShowError(err, a.window)
			return
		}

		a.logger.Info("Exported deck", zap.String("path", outputPath), zap.Int("cards", cards.Len()))
		a.updateStatus(fmt.Sprintf("Exported %d cards to %s", cards.Len(), outputPath))
	}, a.window)
	d.Resize(fyne.NewSize(480, 360))
	d.Show()
}
