package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTHORITY", "root")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Authority != "root" {
		t.Fatalf("authority = %q, want root", cfg.Authority)
	}
	if cfg.DB.Driver != DriverPostgres {
		t.Fatalf("driver = %q, want %q", cfg.DB.Driver, DriverPostgres)
	}
	if cfg.DB.Port != 5432 {
		t.Fatalf("port = %d, want 5432", cfg.DB.Port)
	}
	if cfg.DB.ConnMaxLifeTime != 30*time.Minute {
		t.Fatalf("conn max lifetime = %v, want 30m", cfg.DB.ConnMaxLifeTime)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Fatalf("grpc addr = %q, want :50051", cfg.GRPCAddr)
	}
	if cfg.SerializableTx {
		t.Fatalf("serializable tx should be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTHORITY", "root")
	t.Setenv("MARKETPLACE_DB_DRIVER", "sqlite")
	t.Setenv("MARKETPLACE_DB_SQLITE_PATH", "/tmp/m.db")
	t.Setenv("MARKETPLACE_SERIALIZABLE_TX", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.SQLitePath != "/tmp/m.db" {
		t.Fatalf("unexpected db config: %+v", cfg.DB)
	}
	if !cfg.SerializableTx {
		t.Fatalf("serializable tx not applied")
	}
}

func TestLoad_MissingAuthority(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTHORITY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing authority")
	}
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("MARKETPLACE_AUTHORITY", "root")
	t.Setenv("MARKETPLACE_DB_PORT", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestDBConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     DBConfig
		wantErr bool
	}{
		{name: "postgres ok", cfg: DBConfig{Driver: DriverPostgres, Host: "h", User: "u", Name: "n"}},
		{name: "postgres missing host", cfg: DBConfig{Driver: DriverPostgres, User: "u", Name: "n"}, wantErr: true},
		{name: "sqlite ok", cfg: DBConfig{Driver: DriverSQLite, SQLitePath: "x.db"}},
		{name: "sqlite empty path", cfg: DBConfig{Driver: DriverSQLite, SQLitePath: " "}, wantErr: true},
		{name: "unknown driver", cfg: DBConfig{Driver: "oracle"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("validate err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
