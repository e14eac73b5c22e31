package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/parqetimport"
	"github.com/google/subcommands"
)

const orders = `"Transaction ID",Date(UTC),Side,"Trading total","Trading total","Order Amount","Order Amount","Average Price",Status
T1,2022-07-02 09:19:36,BUY,500.00EUR,500.00EUR,0.01BTC,0.01BTC,50000,FILLED
T2,2022-07-03 09:19:36,SELL,20.00USDT,20.00USDT,0.1SOL,0.1SOL,200,FILLED
T3,2022-07-04 09:19:36,BUY,20.00EUR,20.00EUR,0.1SOL,0.1SOL,200,CANCELED
`

// createTempExport writes content into a temporary export file.
func createTempExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// run executes the convert command with args and returns its exit status and
// outputs.
func run(t *testing.T, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := &ConvertCmd{stdout: &stdout, stderr: &stderr}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	status := cmd.Execute(context.Background(), f)
	return status, stdout.String(), stderr.String()
}

func TestConvertMissingArgument(t *testing.T) {
	status, stdout, stderr := run(t)
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	if int(status) != 1 {
		t.Errorf("Expected exit code 1, got %d", status)
	}
	if strings.TrimSpace(stderr) != "No input path specified" {
		t.Errorf("stderr = %q, want the missing input message", stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestConvertOutput(t *testing.T) {
	path := createTempExport(t, orders)

	status, stdout, stderr := run(t, path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}

	want := parqetimport.Preamble + parqetimport.HeaderLine +
		",2022-07-02 09:19:36,buy,,500.00000000000000000000,EUR,0.01000000000000000000,BTC,50000.00000000000000000000,,Cryptocurrency,,-,,," + "\n" +
		",2022-07-03 09:19:36,sell,,20.00000000000000000000,USD,0.10000000000000000000,SOL,200.00000000000000000000,,Cryptocurrency,,-,,,"
	if stdout != want {
		t.Errorf("Output mismatch.\nGot:\n%s\nWant:\n%s", stdout, want)
	}
	if !strings.Contains(stderr, "CANCELED") {
		t.Errorf("stderr = %q, want a diagnostic for the cancelled order", stderr)
	}
}

func TestConvertRelativePath(t *testing.T) {
	path := createTempExport(t, orders)
	t.Chdir(filepath.Dir(path))

	status, stdout, stderr := run(t, filepath.Base(path))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}
	if !strings.HasPrefix(stdout, parqetimport.Preamble) {
		t.Errorf("stdout does not start with the preamble: %q", stdout)
	}
}

func TestConvertFatal(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown side", strings.Replace(orders, "BUY", "HOLD", 1), "unknown transaction type"},
		{"no status", "Date(UTC),Side\n2022-07-02,BUY\n", "status column not found"},
		{"broken quotes", "a,b\n1,\"2\"x\n", "malformed csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, stdout, stderr := run(t, createTempExport(t, tt.content))
			if status != subcommands.ExitFailure {
				t.Errorf("Expected ExitFailure, got %v", status)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing written on failure", stdout)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}

func TestConvertMissingFile(t *testing.T) {
	status, _, stderr := run(t, filepath.Join(t.TempDir(), "missing.csv"))
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
	if !strings.Contains(stderr, "cannot access input file") {
		t.Errorf("stderr = %q, want a file access error", stderr)
	}
}

func TestConvertSummary(t *testing.T) {
	path := createTempExport(t, orders)

	_, plain, _ := run(t, path)
	status, stdout, stderr := run(t, "-summary", path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v: %s", status, stderr)
	}
	if stdout != plain {
		t.Errorf("-summary changed stdout:\n%s", stdout)
	}
	for _, want := range []string{"Skipped", "not-filled", "BTC"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want the summary to mention %q", stderr, want)
		}
	}
}

func TestConvertEnvDefaults(t *testing.T) {
	t.Setenv(EnvLogJSON, "true")
	path := createTempExport(t, orders)

	_, _, stderr := run(t, path)
	line, _, _ := strings.Cut(stderr, "\n")
	if !strings.HasPrefix(line, "{") {
		t.Errorf("stderr = %q, want JSON diagnostics when %s is set", stderr, EnvLogJSON)
	}
}

func TestRegister(t *testing.T) {
	f := flag.NewFlagSet("pcs", flag.ContinueOnError)
	commander := subcommands.NewCommander(f, "pcs")
	Register(commander)

	if err := f.Parse([]string{"convert"}); err != nil {
		t.Fatal(err)
	}
	// convert without an input path.
	if status := commander.Execute(context.Background()); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}
