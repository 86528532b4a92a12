package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func str(s string) *string { return &s }

func TestContactRepo_Update_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)

	c := model.Contact{
		ID:      7,
		Name:    str("ivan"),
		Surname: str("petrov"),
		Email:   str("ivan@example.com"),
		Address: model.Address{City: str("minsk")},
	}

	mock.ExpectExec(`UPDATE contacts`).
		WithArgs(c.ID,
			c.Name, c.Surname, c.Patronymic, c.Birthday, c.Nationality,
			c.Gender, c.MaritalStatus, c.WebSite, c.Email, c.PlaceOfWork,
			c.Address.Country, c.Address.City, c.Address.Street,
			c.Address.HouseNumber, c.Address.FlatNumber, c.Address.ZipCode).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.Update(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepo_Update_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)

	c := model.Contact{ID: 99}
	mock.ExpectExec(`UPDATE contacts`).
		WithArgs(c.ID,
			c.Name, c.Surname, c.Patronymic, c.Birthday, c.Nationality,
			c.Gender, c.MaritalStatus, c.WebSite, c.Email, c.PlaceOfWork,
			c.Address.Country, c.Address.City, c.Address.Street,
			c.Address.HouseNumber, c.Address.FlatNumber, c.Address.ZipCode).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, r.Update(context.Background(), c), errs.ErrNotFound)
}

func TestContactRepo_UpdatePhoto(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)

	mock.ExpectExec(`UPDATE contacts SET photo=\$2 WHERE id=\$1`).
		WithArgs(7, "photo-123.png").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdatePhoto(context.Background(), 7, "photo-123.png"))

	mock.ExpectExec(`UPDATE contacts SET photo=\$2 WHERE id=\$1`).
		WithArgs(8, "x").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.UpdatePhoto(context.Background(), 8, "x"), errs.ErrNotFound)
}

func TestContactRepo_Exists(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM contacts WHERE id=\$1\)`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := r.Exists(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM contacts WHERE id=\$1\)`).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = r.Exists(context.Background(), 99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDB_CheckConnection(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectPing()
	require.NoError(t, db.CheckConnection(context.Background(), time.Second))
}

func TestDB_CheckConnection_FailureTagged(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))
	err := db.CheckConnection(context.Background(), time.Second)
	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
