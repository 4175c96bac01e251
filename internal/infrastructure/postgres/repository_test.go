package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-balance-api/internal/infrastructure/postgres"
)

// fakeRow implementa pgx.Row devolviendo valores fijos o un error.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.vals[i].(int64)
		case *string:
			*p = r.vals[i].(string)
		}
	}
	return nil
}

// fakeQuerier solo responde QueryRow; registra el último SQL y argumentos.
type fakeQuerier struct {
	row     fakeRow
	lastSQL string
	args    []any
}

func (q *fakeQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("no soportado")
}

func (q *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no soportado")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL = sql
	q.args = args
	return q.row
}

func TestOpeningBalance_Existente(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{vals: []any{int64(42000)}}}
	repo := postgres.NewOpeningBalanceRepository(q, 50000)

	v, err := repo.GetOpeningBalance(context.Background(), "base2")

	require.NoError(t, err)
	assert.Equal(t, int64(42000), v)
	assert.Equal(t, []any{"base2"}, q.args)
}

func TestOpeningBalance_SinFilaUsaDefecto(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := postgres.NewOpeningBalanceRepository(q, 50000)

	v, err := repo.GetOpeningBalance(context.Background(), "base9")

	require.NoError(t, err)
	assert.Equal(t, int64(50000), v)
}

func TestOpeningBalance_TablaInexistente(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}}}
	repo := postgres.NewOpeningBalanceRepository(q, 50000)

	_, err := repo.GetOpeningBalance(context.Background(), "base1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_schema.sql")
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
}

func TestOperator_DemoUser(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{vals: []any{"user1", "John Doe", "commander", "base1"}}}
	repo := postgres.NewOperatorRepository(q)

	u, err := repo.GetDemoUser(context.Background())

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "base1", u.Base)
	assert.Contains(t, q.lastSQL, "is_demo")
}

func TestOperator_SinDemo(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := postgres.NewOperatorRepository(q)

	u, err := repo.GetDemoUser(context.Background())

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestBase_GetByID_NoExiste(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}
	repo := postgres.NewBaseRepository(q)

	b, err := repo.GetByID(context.Background(), "base9")

	require.NoError(t, err)
	assert.Nil(t, b)
}
