package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/alex-kodr/bookings-dropdown-service/pkg/metrics"
)

// DBExecutor интерфейс выполнения запросов к БД
// Реализуется *sql.DB и обёрткой *DB с метриками
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// poolStatsInterval период сэмплирования статистики connection pool
const poolStatsInterval = 10 * time.Second

// DB обёртка над *sql.DB, записывающая длительность запросов в метрики
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// WrapWithDefault оборачивает подключение к БД метриками и запускает
// фоновый сбор статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m}

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnsOpen.Set(float64(stats.OpenConnections))
				m.DBConnsInUse.Set(float64(stats.InUse))
				m.DBConnsIdle.Set(float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// QueryContext выполняет запрос с записью длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	defer d.observe("query", start)
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос одной строки с записью длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	defer d.observe("query_row", start)
	return d.db.QueryRowContext(ctx, query, args...)
}

// ExecContext выполняет запрос без результата с записью длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	defer d.observe("exec", start)
	return d.db.ExecContext(ctx, query, args...)
}
