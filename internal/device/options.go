package device

import "time"

// DefaultMessageDelay is how long system messages stay on the display.
const DefaultMessageDelay = 500 * time.Millisecond

type config struct {
	messageDelay time.Duration
	sleep        func(time.Duration)
	version      string
}

func defaultConfig() config {
	return config{
		messageDelay: DefaultMessageDelay,
		sleep:        time.Sleep,
		version:      "dev",
	}
}

// Option configures the Executor.
type Option func(*config)

// WithMessageDelay sets how long system messages are shown. Zero disables the wait.
func WithMessageDelay(d time.Duration) Option {
	return func(c *config) {
		c.messageDelay = d
	}
}

// WithVersion sets the firmware version shown by the version command.
func WithVersion(v string) Option {
	return func(c *config) {
		c.version = v
	}
}

func withSleep(f func(time.Duration)) Option {
	return func(c *config) {
		c.sleep = f
	}
}
