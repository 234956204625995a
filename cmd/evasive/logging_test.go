package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from an empty directory so logs/ never lands in the tree
func inTempDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	log.Println("evade: chase start #1")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "chase start #1") {
		t.Errorf("Expected log line in file, got %q", data)
	}

	out := log.Writer()
	if out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not share the terminal")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected 1 rotated log file, got %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file under %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, []byte("previous run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.HasPrefix(string(data), "previous run\n") {
		t.Errorf("Expected small file to be appended to, got %q", data)
	}
}
