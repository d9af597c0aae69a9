package notify

import "log"

// LogDispatcher writes notifications to the process log. It is the default
// channel for local runs where no external channel is configured; permission
// is always granted.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (dispatcher *LogDispatcher) RequestPermission() Permission {
	return PermissionGranted
}

func (dispatcher *LogDispatcher) Show(title string, body string, opts Options) {
	if opts.Silent {
		return
	}
	log.Printf("notify: %s: %s", title, body)
}
