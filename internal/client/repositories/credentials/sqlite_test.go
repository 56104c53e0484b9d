package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	db, err := Open(context.Background(), "file:credentials_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`DELETE FROM credentials`)
	require.NoError(t, err)
	return NewSQLiteRepository(db), db
}

func TestToken_AbsentIsNotAnError(t *testing.T) {
	repo, _ := setupRepo(t)

	token, err := repo.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", token)
}

func TestSave_ThenToken(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}

func TestSave_ReplacesPreviousToken(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	require.NoError(t, repo.Save(ctx, "tok-2"))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
}

func TestSave_SingleRowAfterReplace(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	require.NoError(t, repo.Save(ctx, "tok-2"))
	require.NoError(t, repo.Save(ctx, "tok-3"))

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&rows))
	require.Equal(t, 1, rows)

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-3", token)
}

func TestDelete_Idempotent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1"))
	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "", token)
}
