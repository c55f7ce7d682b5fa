package closer

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/you-humble/assembly-seeder/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// Closer releases registered resources in reverse registration order, once.
type Closer struct {
	mu     sync.Mutex
	once   sync.Once
	funcs  []namedFunc
	logger Logger
	err    error
}

var globalCloser = New()

func New() *Closer {
	return &Closer{logger: logger.NoopLogger{}}
}

func SetLogger(l Logger) {
	globalCloser.SetLogger(l)
}

func AddNamed(name string, fn func(context.Context) error) {
	globalCloser.AddNamed(name, fn)
}

func CloseAll(ctx context.Context) error {
	return globalCloser.CloseAll(ctx)
}

func (c *Closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *Closer) AddNamed(name string, fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

func (c *Closer) CloseAll(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if err := ctx.Err(); err != nil {
				log.Error(ctx, "shutdown deadline reached, skipping", zap.String("resource", f.name))
				c.err = multierr.Append(c.err, err)
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close", zap.String("resource", f.name), zap.Error(err))
				c.err = multierr.Append(c.err, err)
				continue
			}
			log.Info(ctx, "closed", zap.String("resource", f.name))
		}
	})

	return c.err
}
