// Package processor connects parsed flags to glossyflash's run modes: the
// headless command-line generator with its printing and export, the Fyne
// desktop GUI and the terminal UI. It is the main coordinator between the
// other packages.
package processor
