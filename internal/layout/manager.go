package layout

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"fitdash/internal/widget"
)

// Manager is one page session's layout: the effective widgets, the edit-mode
// flag and the snapshot taken when editing started.
//
// Toggle and Move only apply while editing. Save and RestoreDefaults write
// through the adapter; a write error is returned as a warning and the
// in-memory layout is kept either way.
type Manager struct {
	mu       sync.Mutex
	reg      *widget.Registry
	adapter  *Adapter
	logger   *zap.Logger
	tracer   oteltrace.Tracer
	session  string
	widgets  []WidgetConfig
	snapshot []WidgetConfig
	editing  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTracer sets the tracer used for load, save and restore spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(m *Manager) {
		if t != nil {
			m.tracer = t
		}
	}
}

// NewManager loads the saved layout (or the defaults) for a new session.
func NewManager(ctx context.Context, reg *widget.Registry, adapter *Adapter, opts ...Option) *Manager {
	m := &Manager{
		reg:     reg,
		adapter: adapter,
		logger:  zap.NewNop(),
		tracer:  noop.NewTracerProvider().Tracer(""),
		session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(zap.String("session", m.session))
	m.widgets = m.load(ctx)
	return m
}

// Session returns the id attached to this manager's logs and spans.
func (m *Manager) Session() string { return m.session }

func (m *Manager) load(ctx context.Context) []WidgetConfig {
	ctx, span := m.tracer.Start(ctx, "layout.load", oteltrace.WithAttributes(
		attribute.String("fitdash.session", m.session),
		attribute.String("fitdash.layout.key", m.adapter.Key()),
	))
	defer span.End()

	persisted := m.adapter.Read(ctx)
	span.SetAttributes(
		attribute.Bool("fitdash.layout.saved", persisted != nil),
		attribute.Int("fitdash.layout.entries", len(persisted)),
	)
	return Load(m.reg, persisted)
}

// Widgets returns a copy of the current layout, sorted by order.
func (m *Manager) Widgets() []WidgetConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Clone(m.widgets)
}

// Areas returns the render projection of the current layout.
func (m *Manager) Areas() Areas {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Project(m.widgets)
}

// Editing reports whether edit mode is active.
func (m *Manager) Editing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editing
}

// EnterEditMode snapshots the layout and starts staging edits.
// It returns false if edit mode was already active; the original snapshot is kept.
func (m *Manager) EnterEditMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editing {
		return false
	}
	m.snapshot = Clone(m.widgets)
	m.editing = true
	m.logger.Debug("layout edit started")
	return true
}

// Toggle flips the visibility of id. It reports whether anything changed.
func (m *Manager) Toggle(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editing {
		return false
	}
	var changed bool
	m.widgets, changed = ToggleVisibility(m.widgets, id)
	m.logger.Debug("layout toggle", zap.String("widget", id), zap.Bool("changed", changed))
	return changed
}

// Move moves id one step within its area. It reports whether anything changed.
func (m *Manager) Move(id string, dir Direction) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editing {
		return false
	}
	var changed bool
	m.widgets, changed = MoveWidget(m.widgets, id, dir)
	m.logger.Debug("layout move", zap.String("widget", id), zap.Stringer("direction", dir), zap.Bool("changed", changed))
	return changed
}

// Save persists the current layout and leaves edit mode.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, span := m.tracer.Start(ctx, "layout.save", oteltrace.WithAttributes(
		attribute.String("fitdash.session", m.session),
	))
	defer span.End()

	m.editing = false
	m.snapshot = nil
	err := m.adapter.Write(ctx, Persisted(m.widgets))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return err
	}
	m.logger.Info("layout saved", zap.Int("widgets", len(m.widgets)))
	return nil
}

// Cancel restores the snapshot taken by EnterEditMode and leaves edit mode.
// It returns false when not editing.
func (m *Manager) Cancel() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editing {
		return false
	}
	m.widgets = m.snapshot
	m.snapshot = nil
	m.editing = false
	m.logger.Debug("layout edit cancelled")
	return true
}

// RestoreDefaults resets every widget to the registry defaults, persists
// them immediately and leaves edit mode. No snapshot is involved.
func (m *Manager) RestoreDefaults(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, span := m.tracer.Start(ctx, "layout.restore_defaults", oteltrace.WithAttributes(
		attribute.String("fitdash.session", m.session),
	))
	defer span.End()

	m.widgets = Defaults(m.reg)
	m.snapshot = nil
	m.editing = false
	err := m.adapter.Write(ctx, Persisted(m.widgets))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return err
	}
	m.logger.Info("layout restored to defaults")
	return nil
}

// Reload re-reads the stored layout, e.g. after another session saved.
// Staged edits win: it returns false and does nothing while editing.
func (m *Manager) Reload(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editing {
		return false
	}
	m.widgets = m.load(ctx)
	return true
}
