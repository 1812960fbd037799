package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered before the browser is
// replaced with a fresh process.
const DefaultMaxPages = 75

// browser owns one headless Chrome process and replaces it after maxPages
// renders. It is safe for concurrent use.
type browser struct {
	mu       sync.Mutex
	current  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
}

func newBrowser(maxPages int) (*browser, error) {
	b := &browser{maxPages: maxPages}
	if err := b.launch(); err != nil {
		return nil, err
	}
	return b, nil
}

// acquire returns the browser to render the next page with, replacing it
// first when the page budget is spent. A failed relaunch keeps the old one.
func (b *browser) acquire() (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil, fmt.Errorf("browser closed")
	}

	if b.maxPages > 0 && b.pages >= b.maxPages {
		old, oldLauncher := b.current, b.launcher
		if err := b.launch(); err != nil {
			b.current, b.launcher = old, oldLauncher
		} else {
			_ = old.Close()
			oldLauncher.Kill()
			b.pages = 0
		}
	}

	b.pages++
	return b.current, nil
}

func (b *browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.current = rb
	b.launcher = l
	return nil
}

// close shuts the browser down. Later calls are no-ops.
func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	if b.current != nil {
		err = b.current.Close()
		b.current = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

func (b *browser) pid() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
