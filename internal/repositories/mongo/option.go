package mongo

import (
	"log/slog"
	"time"
)

const (
	DefaultDatabase = "sponsorly"
	DefaultTimeout  = 10 * time.Second

	usersCollection    = "users"
	messagesCollection = "messages"
	ticketsCollection  = "supporttickets"
)

type options struct {
	database string
	timeout  time.Duration
	logger   *slog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		database: DefaultDatabase,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option настраивает MongoDB-хранилище
type Option func(*options)

func WithDatabase(name string) Option {
	return func(o *options) {
		if name != "" {
			o.database = name
		}
	}
}

// WithTimeout задает таймаут одной операции
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
