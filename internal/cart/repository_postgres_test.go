package cart

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresAdd_ReturnsAccumulatedQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(addEntryQuery)).
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))

	repo := NewPostgresRepository(db)
	qty, err := repo.Add(1, 2, 3)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if qty != 5 {
		t.Fatalf("expected accumulated quantity 5, got %d", qty)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresSetQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(setQuantityQuery)).
		WithArgs(1, 2, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	updated, err := repo.SetQuantity(1, 2, 7)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if !updated {
		t.Fatalf("expected update to report a matched row")
	}
}

func TestPostgresSetQuantity_AbsentPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(setQuantityQuery)).
		WithArgs(1, 99, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	updated, err := repo.SetQuantity(1, 99, 7)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if updated {
		t.Fatalf("absent pair must report no update")
	}
}

func TestPostgresRemove_AbsentPairIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(removeEntryQuery)).
		WithArgs(1, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostgresRepository(db)
	if err := repo.Remove(1, 99); err != nil {
		t.Fatalf("remove of absent pair must not error: %v", err)
	}
}

func TestPostgresMoveToHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(moveToHistoryQuery)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresRepository(db)
	if err := repo.MoveToHistory(1, 2); err != nil {
		t.Fatalf("move to history failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getEntryQuery)).
		WithArgs(1, 99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "selected_options", "created_at", "updated_at"}))

	repo := NewPostgresRepository(db)
	if _, err := repo.Get(1, 99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
