// file: internals/databases/dbtest/dbtest.go
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDown: error yang dikembalikan setiap statement.
var ErrDown = errors.New("db down")

// Recorder menyimpan SQL yang sempat dicoba. Berguna untuk memastikan
// sebuah handler TIDAK menjalankan statement tertentu.
type Recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *Recorder) add(q string) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
}

func (r *Recorder) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func (r *Recorder) Attempted(keyword string) bool {
	for _, q := range r.Queries() {
		if strings.Contains(strings.ToUpper(q), strings.ToUpper(keyword)) {
			return true
		}
	}
	return false
}

type failConn struct{ rec *Recorder }

func (c *failConn) Prepare(q string) (driver.Stmt, error) {
	if c.rec != nil {
		c.rec.add(q)
	}
	return nil, ErrDown
}

func (c *failConn) Close() error { return nil }

func (c *failConn) Begin() (driver.Tx, error) { return noopTx{}, nil }

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

type failConnector struct{ rec *Recorder }

func (c failConnector) Connect(context.Context) (driver.Conn, error) {
	return &failConn{rec: c.rec}, nil
}

func (c failConnector) Driver() driver.Driver { return failDriver{} }

type failDriver struct{}

func (failDriver) Open(string) (driver.Conn, error) { return &failConn{}, nil }

// Open membangun *gorm.DB di atas driver yang selalu gagal, tanpa koneksi
// Postgres sungguhan. rec boleh nil kalau tidak perlu merekam SQL.
func Open(rec *Recorder) *gorm.DB {
	sqlDB := sql.OpenDB(failConnector{rec: rec})
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	return db
}
