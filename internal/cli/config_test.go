package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	tserr "github.com/matzehuels/tilestitch/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaultsWhenAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, xdg, "tilestitch/config.toml", `
[cache]
backend = "redis"

[cache.redis]
addr = "localhost:6379"
db = 3

[render]
formats = ["png", "svg"]
scale = 8
`)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Cache.Backend = "redis"
	want.Cache.Redis = RedisConfig{Addr: "localhost:6379", DB: 3}
	want.Render = RenderConfig{Formats: []string{"png", "svg"}, Scale: 8}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		code    tserr.Code
	}{
		{"syntax", "[render\nscale = 2", tserr.ErrCodeInvalidConfig},
		{"unknown key", "[render]\ncolour = \"red\"", tserr.ErrCodeInvalidConfig},
		{"bad format", "[render]\nformats = [\"gif\"]", tserr.ErrCodeInvalidConfig},
		{"bad scale", "[render]\nscale = 0", tserr.ErrCodeInvalidConfig},
		{"bad body limit", "[server]\nmax_body_bytes = -1", tserr.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".toml", tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := tserr.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !tserr.Is(err, tserr.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := DefaultConfig()
	want.Server.Addr = ":9090"
	want.Cache.Mongo = MongoConfig{URI: "mongodb://localhost", Database: "tiles"}
	if err := writeConfig(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestCacheNamespace(t *testing.T) {
	if got := (CacheConfig{}).keyer().SolutionKey("abc"); got != "solution:abc" {
		t.Errorf("default SolutionKey = %q", got)
	}
	if got := (CacheConfig{Namespace: "staging"}).keyer().SolutionKey("abc"); got != "staging:solution:abc" {
		t.Errorf("scoped SolutionKey = %q", got)
	}

	path := writeFile(t, t.TempDir(), "config.toml", "[cache]\nnamespace = \"../up\"\n")
	if _, err := LoadConfig(path); !tserr.Is(err, tserr.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}
