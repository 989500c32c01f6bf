// Package config provides configuration loading, validation, and hot reload
// for Mercator Callisto.
//
// Configuration is read from a single YAML file. Loading applies defaults
// for unset fields, normalizes case-insensitive values, and validates the
// result, collecting all field errors before reporting.
//
// # Hot Reload
//
// Watcher observes the configuration file with fsnotify and reloads it on
// change. The active configuration lives in a Store and is swapped
// atomically; requests in flight keep the snapshot they started with, so a
// reload never changes tracing behavior mid-request.
//
// # Example
//
//	cfg, err := config.LoadConfig("/etc/callisto/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := config.NewStore(cfg)
//
//	w, _ := config.NewWatcher("/etc/callisto/config.yaml", logger, store.Replace)
//	_ = w.Start()
//	defer w.Stop()
package config
