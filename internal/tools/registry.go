package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pmalik/teamdinner/internal/logging"
)

// Registry maps tool names to their descriptors and handlers. Invocation
// never raises: every failure mode is folded into the returned Result so the
// orchestration loop can report it back to the model and keep going.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string

	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

type entry struct {
	desc    Descriptor
	handler Handler
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the reference-time source used when resolving relative
// datetime arguments. Tests use this for determinism.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithLogger sets the logger used for invocation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry. Datetime arguments are resolved in
// loc, anchored on the current wall-clock time.
func NewRegistry(loc *time.Location, opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]entry),
		loc:     loc,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool. Registering a name twice replaces the handler but
// keeps the original position in the advertised order.
func (r *Registry) Register(desc Descriptor, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[desc.Name]; !exists {
		r.order = append(r.order, desc.Name)
	}
	r.entries[desc.Name] = entry{desc: desc, handler: handler}
}

// Descriptors returns every registered descriptor in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].desc)
	}
	return out
}

// Invoke runs the named tool against raw model-supplied arguments. The
// pipeline is: resolve datetime aliases and coerce numeric types, apply
// defaults, execute, then sanitize the output into a JSON-compatible tree.
// All failures, including handler panics, come back inside the Result.
func (r *Registry) Invoke(ctx context.Context, name string, raw map[string]any) Result {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	log := logging.WithTool(r.logger, name)

	if !ok {
		log.Warn("tool not found", logging.Status(logging.StatusError))
		return Result{Name: name, Err: &InvokeError{Kind: KindNotFound, Message: notFoundMessage(name)}}
	}

	args, err := normalizeArgs(e.desc, raw, r.now().In(r.loc), r.loc)
	if err != nil {
		log.Warn("argument normalization failed", logging.Err(err))
		return Result{Name: name, Err: &InvokeError{Kind: KindUnparseable, Message: err.Error()}}
	}
	applyDefaults(e.desc, args)

	start := time.Now()
	payload, err := r.run(ctx, e.handler, args)
	elapsed := time.Since(start)

	if err != nil {
		log.Error("tool failed", logging.Err(err), logging.Duration(elapsed))
		return Result{Name: name, Err: &InvokeError{Kind: KindExecution, Message: err.Error()}}
	}

	sanitized, err := Sanitize(payload)
	if err != nil {
		log.Error("tool output not serializable", logging.Err(err))
		return Result{Name: name, Err: &InvokeError{Kind: KindExecution, Message: err.Error()}}
	}

	log.Info("tool succeeded", logging.Status(logging.StatusSuccess), logging.Duration(elapsed))
	return Result{Name: name, Payload: sanitized}
}

// run executes a handler, converting panics into errors.
func (r *Registry) run(ctx context.Context, h Handler, args map[string]any) (payload any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return h(ctx, args)
}

// applyDefaults fills in missing arguments that declare a default value.
func applyDefaults(desc Descriptor, args map[string]any) {
	for _, p := range desc.Params {
		if p.Default == nil {
			continue
		}
		if _, ok := args[p.Name]; !ok {
			args[p.Name] = p.Default
		}
	}
}
