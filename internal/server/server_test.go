package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func TestServerServesUntilCancel(t *testing.T) {
	t.Setenv("CAULDRON_DB_PATH", filepath.Join(t.TempDir(), "cauldron.db"))

	server, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()

	url := fmt.Sprintf("http://%s/healthz", server.Addr())
	var resp *http.Response
	for attempt := 0; attempt < 50; attempt++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("health check never succeeded: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestLoadServerEnv(t *testing.T) {
	t.Setenv("CAULDRON_DB_PATH", "")
	env, err := loadServerEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if want := filepath.Join("data", "cauldron.db"); env.DBPath != want {
		t.Errorf("default DBPath = %q, want %q", env.DBPath, want)
	}

	custom := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("CAULDRON_DB_PATH", custom)
	env, err = loadServerEnv()
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if env.DBPath != custom {
		t.Errorf("DBPath = %q, want %q", env.DBPath, custom)
	}
}

func TestServeNilServer(t *testing.T) {
	var server *Server
	if err := server.Serve(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}
