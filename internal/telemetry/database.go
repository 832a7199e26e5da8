package telemetry

import (
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	spanKey  = "telemetry:span"
	startKey = "telemetry:start"

	maxStatementLen = 500
)

// GORMTracingPlugin returns a GORM plugin that opens one span per statement.
// system is the db.system attribute, e.g. "postgresql" or "sqlite".
func GORMTracingPlugin(system string) gorm.Plugin {
	return &tracingPlugin{
		tracer: otel.Tracer("freedomwall/gorm"),
		system: system,
	}
}

type tracingPlugin struct {
	tracer trace.Tracer
	system string
}

func (p *tracingPlugin) Name() string {
	return "telemetry:tracing"
}

// Initialize hooks every CRUD processor before and after the gorm step it wraps
func (p *tracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("telemetry:before_select", p.starter("select")),
		cb.Query().After("gorm:query").Register("telemetry:after_select", p.finish),
		cb.Create().Before("gorm:create").Register("telemetry:before_insert", p.starter("insert")),
		cb.Create().After("gorm:create").Register("telemetry:after_insert", p.finish),
		cb.Update().Before("gorm:update").Register("telemetry:before_update", p.starter("update")),
		cb.Update().After("gorm:update").Register("telemetry:after_update", p.finish),
		cb.Delete().Before("gorm:delete").Register("telemetry:before_delete", p.starter("delete")),
		cb.Delete().After("gorm:delete").Register("telemetry:after_delete", p.finish),
		cb.Raw().Before("gorm:raw").Register("telemetry:before_raw", p.starter("raw")),
		cb.Raw().After("gorm:raw").Register("telemetry:after_raw", p.finish),
	)
}

func (p *tracingPlugin) starter(operation string) func(*gorm.DB) {
	return func(tx *gorm.DB) { p.start(tx, operation) }
}

func (p *tracingPlugin) start(tx *gorm.DB, operation string) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}

	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}

	_, span := p.tracer.Start(ctx, "db."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", p.system),
			attribute.String("db.table", table),
			attribute.String("db.operation", strings.ToUpper(operation)),
		),
	)
	tx.InstanceSet(spanKey, span)
	tx.InstanceSet(startKey, time.Now())
}

func (p *tracingPlugin) finish(tx *gorm.DB) {
	raw, ok := tx.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := raw.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	if raw, ok := tx.InstanceGet(startKey); ok {
		if started, ok := raw.(time.Time); ok {
			span.SetAttributes(attribute.Int64("db.duration_ms", time.Since(started).Milliseconds()))
		}
	}

	// statements carry placeholders, not values
	if sql := tx.Statement.SQL.String(); sql != "" {
		if len(sql) > maxStatementLen {
			sql = sql[:maxStatementLen] + "... (truncated)"
		}
		span.SetAttributes(attribute.String("db.statement", sql))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", tx.RowsAffected))

	// a revision-guarded update that matched nothing lost a compare-and-swap race
	if tx.Error == nil && tx.RowsAffected == 0 && strings.Contains(tx.Statement.SQL.String(), "revision") &&
		strings.HasPrefix(strings.ToUpper(tx.Statement.SQL.String()), "UPDATE") {
		span.AddEvent("revision_conflict")
	}

	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, tx.Error.Error())
		span.RecordError(tx.Error)
	}
}
