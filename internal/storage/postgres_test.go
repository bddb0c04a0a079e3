package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(sqlx.NewDb(db, "postgres")), mock
}

func TestPostgresStore_Get(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("deals_store").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"a"}]`))

	v, found, err := s.Get(context.Background(), "deals_store")
	if err != nil || !found {
		t.Fatalf("Get = found %v, err %v", found, err)
	}
	if v != `[{"id":"a"}]` {
		t.Errorf("Get = %q", v)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_GetMissing(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("brand_submissions").
		WillReturnError(sql.ErrNoRows)

	_, found, err := s.Get(context.Background(), "brand_submissions")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Error("Get on missing row reported found")
	}
}

func TestPostgresStore_SetUpserts(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO kv_store .* ON CONFLICT \(key\) DO UPDATE`).
		WithArgs("deals_store", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Set(context.Background(), "deals_store", "[]"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresStore_SetError(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	boom := errors.New("disk full")

	mock.ExpectExec(`INSERT INTO kv_store`).WillReturnError(boom)

	if err := s.Set(context.Background(), "deals_store", "[]"); !errors.Is(err, boom) {
		t.Errorf("Set error = %v, want wrapped %v", err, boom)
	}
}
