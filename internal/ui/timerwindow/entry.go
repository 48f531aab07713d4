package timerwindow

import "fyne.io/fyne/v2/widget"

// durationEntry commits its text on Enter and when it loses focus.
type durationEntry struct {
	widget.Entry
	onCommit func(string)
}

func newDurationEntry(onCommit func(string)) *durationEntry {
	entry := &durationEntry{onCommit: onCommit}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder("HH:MM:SS")
	entry.OnSubmitted = func(text string) {
		entry.commit()
	}
	return entry
}

// FocusLost commits the text after the usual entry handling.
func (entry *durationEntry) FocusLost() {
	entry.Entry.FocusLost()
	entry.commit()
}

func (entry *durationEntry) commit() {
	if entry.onCommit != nil {
		entry.onCommit(entry.Text)
	}
}
