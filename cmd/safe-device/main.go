// Command safe-device runs an electronic safe on a host machine.
//
// The safe's non-volatile memory is emulated by an image file, so the lock
// state and the unlock code survive restarts. An operator shell stands in
// for the keypad.
//
// Usage:
//
//	safe-device [flags]
//
// Flags:
//
//	-config string           Configuration file path (YAML)
//	-name string             Device name recorded in events (default "safe")
//	-image string            EEPROM image file (default "safe.img")
//	-size int                EEPROM size in bytes (default 1024)
//	-master-password string  Override password (default "1111")
//	-event-log string        Append CBOR events to this file
//	-log-level string        Log level: debug, info, warn, error (default "info")
//	-sync                    Sync the image to disk after every write
//	-interactive             Run the operator shell (default true)
//
// Examples:
//
//	# Start with a fresh image in the current directory
//	safe-device
//
//	# Use a config file and record events
//	safe-device -config /etc/safe/device.yaml -event-log /var/log/safe.elog
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/safebox-project/safebox-go/cmd/safe-device/interactive"
	safelog "github.com/safebox-project/safebox-go/pkg/log"
	"github.com/safebox-project/safebox-go/pkg/persistence"
	"github.com/safebox-project/safebox-go/pkg/safe"
)

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&config.Name, "name", "", "Device name recorded in events")
	flag.StringVar(&config.Image, "image", defaultImage, "EEPROM image file")
	flag.IntVar(&config.Size, "size", defaultSize, "EEPROM size in bytes")
	flag.StringVar(&config.MasterPassword, "master-password", safe.DefaultMasterPassword, "Override password")
	flag.StringVar(&config.EventLog, "event-log", "", "Append CBOR events to this file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Sync, "sync", false, "Sync the image to disk after every write")
	flag.BoolVar(&config.Interactive, "interactive", true, "Run the operator shell")
}

func main() {
	flag.Parse()

	if config.ConfigFile != "" {
		fc, err := loadConfigFile(config.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		mergeConfig(&config, fc, explicit)
	}

	setupLogging(config.LogLevel)

	if err := validateConfig(&config); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	applyDefaults(&config)

	log.Println("Safe Device")
	log.Println("===========")
	log.Printf("Name:  %s", config.Name)
	log.Printf("Image: %s (%d bytes)", config.Image, config.Size)

	image, err := persistence.Open(config.Image, config.Size, persistence.Options{Sync: config.Sync})
	if err != nil {
		log.Fatalf("Failed to open image: %v", err)
	}
	defer image.Close()

	logger, closeLogger := createEventLogger()
	defer closeLogger()

	storeConfig := safe.DefaultConfig()
	storeConfig.MasterPassword = config.MasterPassword
	storeConfig.Logger = logger
	storeConfig.DeviceID = config.Name

	store, err := safe.New(image, storeConfig)
	if err != nil {
		log.Fatalf("Failed to load safe state: %v", err)
	}

	codeState, err := store.CodeState()
	if err != nil {
		log.Printf("Warning: failed to read code: %v", err)
	}
	log.Printf("Boot ID: %s", store.BootID())
	log.Printf("State: %s, code: %s", store.State(), codeState)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if !config.Interactive {
		sig := <-sigCh
		log.Printf("Received signal: %v", sig)
		log.Println("Shutting down...")
		return
	}

	shell, err := interactive.New(store, image, config.Name)
	if err != nil {
		log.Fatalf("Failed to start shell: %v", err)
	}
	log.SetOutput(shell.Stdout())

	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal: %v", sig)
			cancel()
			shell.Close()
		case <-ctx.Done():
		}
	}()

	shell.Run(ctx, cancel)
	log.Println("Goodbye!")
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

// createEventLogger builds the event sink from the configuration. Events go
// to the event log file when configured and to slog at debug level.
func createEventLogger() (safelog.Logger, func()) {
	var loggers []safelog.Logger
	closeFn := func() {}

	if config.EventLog != "" {
		fl, err := safelog.NewFileLogger(config.EventLog)
		if err != nil {
			log.Fatalf("Failed to open event log: %v", err)
		}
		log.Printf("Event log: %s", config.EventLog)
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				log.Printf("Error closing event log: %v", err)
			}
		}
	}

	if config.LogLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, safelog.NewSlogAdapter(slog.New(handler)))
	}

	return safelog.NewMultiLogger(loggers...), closeFn
}
