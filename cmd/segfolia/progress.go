package main

import (
	"sync/atomic"

	"github.com/gosuri/uiprogress"
)

// newProgress returns a started progress bar of total steps, with the
// title of the last step appended. Each command gets its own Progress,
// the package level one can not be restarted after Stop.
func newProgress(ui UI, total int) (*uiprogress.Progress, func(string)) {
	p := uiprogress.New()
	p.Out = ui.Err

	bar := p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()

	var current atomic.Pointer[string]
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		if title := current.Load(); title != nil {
			return *title
		}
		return ""
	})

	p.Start()

	return p, func(title string) {
		current.Store(&title)
		bar.Incr()
	}
}
