package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/master-auth-service/internal/metrics"
)

// MetricsTracer implementa pgx.QueryTracer y publica latencia y errores por sentencia.
type MetricsTracer struct{}

var _ pgx.QueryTracer = (*MetricsTracer)(nil)

type queryStartKey struct{}

type queryStart struct {
	at   time.Time
	name string
}

func (t *MetricsTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: time.Now(), name: statementName(data.SQL)})
}

func (t *MetricsTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	metrics.DBQueryDuration.WithLabelValues(start.name).Observe(time.Since(start.at).Seconds())
	if data.Err != nil {
		metrics.DBErrorsTotal.WithLabelValues(start.name).Inc()
	}
}

// statementName reduce la sentencia a su primera palabra (SELECT, INSERT, ...) para no
// disparar la cardinalidad de la etiqueta.
func statementName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToUpper(fields[0])
}
