package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/cpmech/gosl/chk"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func Test_defaults01(tst *testing.T) {

	chk.PrintTitle("defaults01")

	c, err := FromEnv(env(nil))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, c.DatabaseDir, "database")
	chk.String(tst, string(c.System), string(profile.CIRSOC))
	chk.Int(tst, "max iter", c.Solver.MaxIter, 5)
	chk.Float64(tst, "tol", 0, c.Solver.Tol, 0.01)
	chk.String(tst, c.Addr, ":8080")
	if c.StrictLookup {
		tst.Errorf("lookup is lenient by default")
	}
}

func Test_env01(tst *testing.T) {

	chk.PrintTitle("env01")

	c, err := FromEnv(env(map[string]string{
		EnvRoot:   "/srv/steel",
		EnvDB:     "aisc",
		EnvStrict: "true",
		EnvIter:   "12",
		EnvTol:    "0.001",
		EnvAddr:   "127.0.0.1:9000",
		EnvRate:   "2.5",
		EnvBurst:  "4",
	}))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, c.DatabaseDir, filepath.Join("/srv/steel", "database"))
	chk.String(tst, string(c.System), string(profile.AISC))
	chk.Int(tst, "max iter", c.Solver.MaxIter, 12)
	chk.Float64(tst, "tol", 0, c.Solver.Tol, 0.001)
	chk.Float64(tst, "rate", 0, float64(c.Rate), 2.5)
	chk.Int(tst, "burst", c.Burst, 4)
	if !c.StrictLookup {
		tst.Errorf("strict lookup expected")
	}

	bad := []map[string]string{
		{EnvDB: "eurocode"},
		{EnvStrict: "maybe"},
		{EnvIter: "0"},
		{EnvTol: "-1"},
		{EnvRate: "fast"},
		{EnvBurst: "0"},
	}
	for _, m := range bad {
		if _, err := FromEnv(env(m)); err == nil {
			tst.Errorf("%v must be rejected", m)
		}
	}
	if _, err := FromEnv(env(map[string]string{EnvIter: "0"})); !errors.Is(err, diag.ErrInvalidInput) {
		tst.Errorf("solver cap: %v", err)
	}
}

func Test_dotenv01(tst *testing.T) {

	chk.PrintTitle("dotenv01")

	dir := tst.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte(EnvBurst+"=7\n"), 0o644); err != nil {
		tst.Fatalf("%v", err)
	}
	os.Unsetenv(EnvBurst)
	defer os.Unsetenv(EnvBurst)

	c, err := Load(f, filepath.Join(dir, "missing.env"))
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "burst", c.Burst, 7)

	db := filepath.Join(dir, "database")
	if err := os.MkdirAll(db, 0o755); err != nil {
		tst.Fatalf("%v", err)
	}
	csv := "Tipo;PERFIL;Ag\nIPE;100;10,3\nIPN;100;10,6\n"
	if err := os.WriteFile(filepath.Join(db, profile.CIRSOC.FileName()), []byte(csv), 0o644); err != nil {
		tst.Fatalf("%v", err)
	}
	c.DatabaseDir = db
	c.StrictLookup = true
	t, err := c.Table()
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Int(tst, "rows", len(t.Rows), 2)
	if _, _, err := t.Lookup("100", ""); !errors.Is(err, diag.ErrAmbiguousLookup) {
		tst.Errorf("strict table: %v", err)
	}
}
