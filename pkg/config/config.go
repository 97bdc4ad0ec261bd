package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type APIConfig struct {
	Port            string
	DispatchURL     string
	DispatchTimeout time.Duration // 0 waits indefinitely
	DBDSN           string        // optional, enables submission history
	RMQURL          string        // optional, enables the notification queue
	NotifyQueue     string
	NotifyFeedSize  int
}

var API APIConfig

// Load builds an APIConfig from lookup, which is os.Getenv outside tests.
func Load(lookup func(string) string) (APIConfig, error) {
	get := func(k, def string) string {
		if v := lookup(k); v != "" {
			return v
		}
		return def
	}

	cfg := APIConfig{
		Port:        get("PORT", "8080"),
		DispatchURL: lookup("DISPATCH_URL"),
		DBDSN:       lookup("DB_DSN"),
		RMQURL:      lookup("RMQ_URL"),
		NotifyQueue: get("NOTIFY_QUEUE", "composer_notifications"),
	}
	if cfg.DispatchURL == "" {
		return APIConfig{}, errors.New("required env DISPATCH_URL is not set")
	}

	d, err := time.ParseDuration(get("DISPATCH_TIMEOUT", "0s"))
	if err != nil || d < 0 {
		return APIConfig{}, fmt.Errorf("invalid DISPATCH_TIMEOUT %q", lookup("DISPATCH_TIMEOUT"))
	}
	cfg.DispatchTimeout = d

	n, err := strconv.Atoi(get("NOTIFY_FEED_SIZE", "50"))
	if err != nil || n <= 0 {
		return APIConfig{}, fmt.Errorf("invalid NOTIFY_FEED_SIZE %q", lookup("NOTIFY_FEED_SIZE"))
	}
	cfg.NotifyFeedSize = n

	return cfg, nil
}

func MustLoadAPI() {
	cfg, err := Load(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	API = cfg
}
