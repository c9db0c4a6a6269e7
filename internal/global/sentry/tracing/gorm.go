package tracing

import (
	"errors"
	"time"

	"participant-registration/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:db_span"
	callbackPrefix = "sentry_tracing"
)

// dbSpan 一次 gorm 操作对应的 span 和开始时间
type dbSpan struct {
	span  *sentry.Span
	start time.Time
}

// GormTracingPlugin 为报名库的增删改查生成 Sentry span
// 记录不存在（详情页 404、删除确认页回跳）不算错误
type GormTracingPlugin struct {
	// slowThreshold 低于阈值的 span 不发送，0 表示全部发送
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	ms := config.Get().Sentry.Tracing.DBSlowThresholdMs
	return &GormTracingPlugin{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registrations := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{"create",
			func(n string, fn func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(n, fn) }},
		{"query",
			func(n string, fn func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(n, fn) }},
		{"update",
			func(n string, fn func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(n, fn) }},
		{"delete",
			func(n string, fn func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(n, fn) }},
		{"row",
			func(n string, fn func(*gorm.DB)) error { return cb.Row().Before("gorm:row").Register(n, fn) },
			func(n string, fn func(*gorm.DB)) error { return cb.Row().After("gorm:row").Register(n, fn) }},
	}
	for _, r := range registrations {
		if err := r.before(callbackPrefix+":before_"+r.op, p.start(r.op)); err != nil {
			return err
		}
		if err := r.after(callbackPrefix+":after_"+r.op, p.finish); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) start(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		parent := sentry.SpanFromContext(db.Statement.Context)
		if parent == nil {
			return
		}

		table := tableOf(db)
		span := parent.StartChild("db.sql." + op)
		// 只记录操作和表名，SQL 里有报名人的姓名、地址和邮箱
		span.Description = op + " " + table
		span.SetData("db.system", db.Dialector.Name())
		span.SetData("db.table", table)

		db.InstanceSet(gormSpanKey, &dbSpan{span: span, start: time.Now()})
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) finish(db *gorm.DB) {
	v, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	s, ok := v.(*dbSpan)
	if !ok || s.span == nil {
		return
	}

	if p.slowThreshold > 0 && time.Since(s.start) < p.slowThreshold {
		s.span.Sampled = sentry.SampledFalse
	}
	s.span.SetData("db.rows_affected", db.RowsAffected)
	switch {
	case db.Error == nil:
		s.span.Status = sentry.SpanStatusOK
	case errors.Is(db.Error, gorm.ErrRecordNotFound):
		s.span.Status = sentry.SpanStatusNotFound
	default:
		s.span.Status = sentry.SpanStatusInternalError
		s.span.SetData("db.error", db.Error.Error())
	}
	s.span.Finish()
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return "unknown"
}
