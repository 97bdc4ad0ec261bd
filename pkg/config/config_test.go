package config

import (
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(env(map[string]string{"DISPATCH_URL": "http://hook.local/send"}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.NotifyQueue != "composer_notifications" || cfg.NotifyFeedSize != 50 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DispatchTimeout != 0 {
		t.Fatalf("want no timeout by default, got %v", cfg.DispatchTimeout)
	}
	if cfg.DBDSN != "" || cfg.RMQURL != "" {
		t.Fatalf("optional backends set: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"DISPATCH_URL":     "http://hook.local/send",
		"PORT":             "9090",
		"DISPATCH_TIMEOUT": "15s",
		"DB_DSN":           "postgres://u:p@db/cold",
		"RMQ_URL":          "amqp://guest:guest@mq:5672/",
		"NOTIFY_QUEUE":     "toasts",
		"NOTIFY_FEED_SIZE": "5",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9090" || cfg.DispatchTimeout != 15*time.Second || cfg.NotifyQueue != "toasts" || cfg.NotifyFeedSize != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing url":   {},
		"bad timeout":   {"DISPATCH_URL": "http://x", "DISPATCH_TIMEOUT": "soon"},
		"neg timeout":   {"DISPATCH_URL": "http://x", "DISPATCH_TIMEOUT": "-1s"},
		"bad feed size": {"DISPATCH_URL": "http://x", "NOTIFY_FEED_SIZE": "0"},
	}
	for name, m := range cases {
		if _, err := Load(env(m)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
