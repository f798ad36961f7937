package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "default level", level: ""},
		{name: "debug level", level: "debug"},
		{name: "trace level", level: "trace"},
		{name: "unknown level", level: "loud", wantErr: true},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(Config{Level: tc.level, Output: &bytes.Buffer{}})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for level %q", tc.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if client == nil {
				t.Fatalf("expected non-nil client")
			}
		})
	}
}

func TestClient_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	client, err := New(Config{Level: "trace", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tt := []struct {
		name string
		call func(Client)
	}{
		{"Info", func(c Client) { c.Info("info message") }},
		{"Warn", func(c Client) { c.Warn("warn message") }},
		{"Error", func(c Client) { c.Error("error message") }},
		{"Debug", func(c Client) { c.Debug("debug message") }},
		{"Trace", func(c Client) { c.Trace("trace message") }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.call(client)
			want := strings.ToLower(tc.name) + " message"
			if !strings.Contains(buf.String(), want) {
				t.Fatalf("expected output to contain %q, got %q", want, buf.String())
			}
		})
	}
}

func TestClient_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	client, err := New(Config{Level: "info", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	client.Debug("hidden diagnostics")
	if strings.Contains(buf.String(), "hidden diagnostics") {
		t.Fatalf("expected debug entry to be filtered at info level, got %q", buf.String())
	}

	client.Info("visible entry")
	if !strings.Contains(buf.String(), "visible entry") {
		t.Fatalf("expected info entry to be emitted, got %q", buf.String())
	}
}
