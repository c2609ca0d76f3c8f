package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestSQLStoreLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "category", "width", "depth", "tooltip"}).
		AddRow("Stool", "Chairs", 40.0, 40.0, "Bar stool").
		AddRow("Round Table", "Tables", 100.0, 100.0, "")
	mock.ExpectQuery(regexp.QuoteMeta(selectTemplates)).WillReturnRows(rows)

	c, err := NewSQLStore(db).Load(ctx(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 templates, got %d", c.Len())
	}
	stool, ok := c.Lookup("Stool")
	if !ok || stool.Category != Chairs || stool.Tooltip != "Bar stool" {
		t.Fatalf("unexpected stool %+v", stool)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestSQLStoreLoadBadCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name", "category", "width", "depth", "tooltip"}).
		AddRow("Lamp", "Lamps", 20.0, 20.0, "")
	mock.ExpectQuery(regexp.QuoteMeta(selectTemplates)).WillReturnRows(rows)

	if _, err := NewSQLStore(db).Load(ctx(t)); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestSQLStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	c := Default()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteTemplates)).WillReturnResult(sqlmock.NewResult(0, 0))
	for i, tpl := range c.Templates() {
		mock.ExpectExec(regexp.QuoteMeta(insertTemplate)).
			WithArgs(i, tpl.Name, tpl.Category.String(), tpl.DefaultSize.W, tpl.DefaultSize.H, tpl.Tooltip).
			WillReturnResult(sqlmock.NewResult(int64(i), 1))
	}
	mock.ExpectCommit()

	if err := NewSQLStore(db).Save(ctx(t), c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestSQLStoreSaveRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	boom := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteTemplates)).WillReturnError(boom)
	mock.ExpectRollback()

	err = NewSQLStore(db).Save(ctx(t), Default())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	store := NewSQLStore(db)
	if err := store.Save(ctx(t), Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	c, err := store.Load(ctx(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != Default().Len() {
		t.Fatalf("got %d templates", c.Len())
	}
	if first := c.Templates()[0]; first.Name != "Standard Chair" {
		t.Fatalf("order not preserved, first = %q", first.Name)
	}
}
