package gui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// maxLogMessages bounds the log viewer history
const maxLogMessages = 1000

// LogViewer is a widget that displays log messages, newest first. It is a
// zapcore.WriteSyncer so a logger can be teed into it.
type LogViewer struct {
	widget.BaseWidget

	container  *fyne.Container
	logEntry   *widget.Entry
	scrollView *container.Scroll

	mu       sync.Mutex
	messages []string
	// post schedules UI updates on the Fyne goroutine
	post func(func())
}

// NewLogViewer creates a new log viewer widget
func NewLogViewer() *LogViewer {
	v := &LogViewer{
		messages: make([]string, 0),
		post:     fyne.Do,
	}

	// Create log entry (read-only multiline)
	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 160))
	v.scrollView.Direction = container.ScrollBoth

	v.container = container.NewBorder(
		widget.NewLabel("Log messages (newest first):"),
		nil,
		nil,
		nil,
		v.scrollView,
	)

	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *LogViewer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.container)
}

// Write implements io.Writer; every line of p becomes one message
func (v *LogViewer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			v.AddMessage(line)
		}
	}
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer
func (v *LogViewer) Sync() error {
	return nil
}

// AddMessage adds a message to the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	// Prepend to messages (newest first), dropping the oldest beyond the limit
	v.messages = append([]string{message}, v.messages...)
	if len(v.messages) > maxLogMessages {
		v.messages = v.messages[:maxLogMessages]
	}
	text := strings.Join(v.messages, "\n")
	v.mu.Unlock()

	v.post(func() {
		v.logEntry.SetText(text)
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}

// Messages returns a copy of the stored messages, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.messages...)
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	v.messages = v.messages[:0]
	v.mu.Unlock()

	v.post(func() {
		v.logEntry.SetText("")
		v.scrollView.Offset = fyne.NewPos(0, 0)
		v.scrollView.Refresh()
	})
}
