package dbtest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"squad_finder/pkg/dbtest"
)

func TestNewSQLite(t *testing.T) {
	rq := require.New(t)

	schema := filepath.Join(t.TempDir(), "schema.sql")
	rq.NoError(os.WriteFile(schema, []byte(`
		CREATE TABLE parents (id TEXT PRIMARY KEY);
		CREATE TABLE children (id TEXT PRIMARY KEY, parent_id TEXT NOT NULL REFERENCES parents (id));
	`), 0o600))

	db := dbtest.NewSQLite(t, schema)

	_, err := db.Exec(db.Rebind(`INSERT INTO parents (id) VALUES (?)`), "p1")
	rq.NoError(err)

	_, err = db.Exec(db.Rebind(`INSERT INTO children (id, parent_id) VALUES (?, ?)`), "c1", "p1")
	rq.NoError(err)

	_, err = db.Exec(db.Rebind(`INSERT INTO children (id, parent_id) VALUES (?, ?)`), "c2", "missing")
	rq.ErrorContains(err, "FOREIGN KEY constraint failed")

	var count int

	rq.NoError(db.Get(&count, `SELECT COUNT(*) FROM children`))
	rq.Equal(1, count)
}

func TestMigrateFromFileMissing(t *testing.T) {
	rq := require.New(t)

	db := dbtest.NewSQLite(t)

	rq.Error(dbtest.MigrateFromFile(db, filepath.Join(t.TempDir(), "absent.sql")))
}

func TestMigrateFromFileRollsBack(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "0001_good.sql")
	bad := filepath.Join(dir, "0002_bad.sql")

	rq.NoError(os.WriteFile(good, []byte(`CREATE TABLE games (id TEXT PRIMARY KEY);`), 0o600))
	rq.NoError(os.WriteFile(bad, []byte(`CREATE TABLE ads (id TEXT PRIMARY KEY;`), 0o600))

	db := dbtest.NewSQLite(t)

	err := dbtest.MigrateFromFile(db, good, bad)
	rq.ErrorContains(err, "0002_bad.sql")

	var count int

	rq.NoError(db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'games'`))
	rq.Zero(count)
}
