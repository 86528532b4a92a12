package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/andrewch/contactbook/internal/errs"
	"github.com/andrewch/contactbook/internal/model"
)

func TestAttachmentRepo_Create_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAttachmentRepo(db)

	info := model.AttachmentInfo{ContactID: 7, FileName: "a.png", UploadDate: "2026-09-01"}
	mock.ExpectQuery(`INSERT INTO attachments`).
		WithArgs(info.ContactID, info.FileName, info.Comment, info.UploadDate, "key-1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

	id, err := r.Create(context.Background(), info, "key-1")
	require.NoError(t, err)
	require.Equal(t, 3, id)
}

func TestAttachmentRepo_UpdateInfo(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAttachmentRepo(db)

	info := model.AttachmentInfo{AttachmentID: 3, FileName: "renamed.png", Comment: str("scan")}
	mock.ExpectExec(`UPDATE attachments SET file_name=\$2, comment=\$3 WHERE id=\$1`).
		WithArgs(info.AttachmentID, info.FileName, info.Comment).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.UpdateInfo(context.Background(), info))

	mock.ExpectExec(`UPDATE attachments SET file_name=\$2, comment=\$3 WHERE id=\$1`).
		WithArgs(99, "x", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.UpdateInfo(context.Background(), model.AttachmentInfo{AttachmentID: 99, FileName: "x"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAttachmentRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAttachmentRepo(db)

	mock.ExpectExec(`DELETE FROM attachments WHERE id=\$1`).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(context.Background(), 3))

	mock.ExpectExec(`DELETE FROM attachments WHERE id=\$1`).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(context.Background(), 99), errs.ErrNotFound)
}

func TestAttachmentRepo_GetStoreKey(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAttachmentRepo(db)

	mock.ExpectQuery(`SELECT store_key FROM attachments WHERE id=\$1`).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"store_key"}).AddRow("key-1"))
	key, err := r.GetStoreKey(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "key-1", key)

	mock.ExpectQuery(`SELECT store_key FROM attachments WHERE id=\$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetStoreKey(context.Background(), 99)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAttachmentRepo_ListByContact(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewAttachmentRepo(db)

	cols := []string{"id", "contact_id", "file_name", "comment", "upload_date"}
	mock.ExpectQuery(`SELECT .+ FROM attachments WHERE contact_id=\$1 ORDER BY id`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(1, 7, "a.png", nil, "2026-08-30").
			AddRow(2, 7, "b.pdf", str("contract"), "2026-09-01"))

	out, err := r.ListByContact(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "a.png", out[0].FileName)
	require.Equal(t, "contract", *out[1].Comment)
}
