package redisinfra

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tiiz-app/stuff-vendor-panel/internal/cacheinfra"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantField string
	}{
		{
			name:   "default config is valid",
			config: DefaultConfig(),
		},
		{
			name: "empty addr",
			config: Config{
				TTL: time.Minute,
			},
			wantField: "Addr",
		},
		{
			name: "zero ttl",
			config: Config{
				Addr: "localhost:6379",
			},
			wantField: "TTL",
		},
		{
			name: "negative ttl",
			config: Config{
				Addr: "localhost:6379",
				TTL:  -time.Second,
			},
			wantField: "TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *cacheinfra.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *cacheinfra.ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Addr == "" {
		t.Error("Addr should not be empty")
	}
	if cfg.TTL <= 0 {
		t.Error("TTL should be positive")
	}
	if cfg.Namespace == "" {
		t.Error("Namespace should not be empty")
	}
}

func TestDecodeAs(t *testing.T) {
	type item struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	got, err := decodeAs([]byte(`{"id":"sp_1","name":"Standard"}`), reflect.TypeOf(item{}))
	if err != nil {
		t.Fatalf("decodeAs() error = %v", err)
	}

	want := item{ID: "sp_1", Name: "Standard"}
	if got != any(want) {
		t.Errorf("decodeAs() = %#v, want %#v", got, want)
	}
}

func TestDecodeAsInvalidJSON(t *testing.T) {
	if _, err := decodeAs([]byte("not json"), reflect.TypeOf("")); err == nil {
		t.Fatal("expected decode error")
	}
}
