package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChainCommand_Stdin(t *testing.T) {
	input := "(0,0),(10,5)\n\n# comment line\n(5,2),(15,1)\n"
	rootCmd.SetIn(strings.NewReader(input))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"chain", "--policy", "add"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "(0,0),(5,7),(10,6.5),(15,6)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestChainCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.txt")
	content := "(0,0),(3,5)\n(10,1),(12,2)\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := execute(t, "chain", "--policy", "prev", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "(0,0),(3,5),(10,1),(12,2)\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestChainCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "chain", "--policy", "add", filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Error("expected error for missing curve file")
	}
}

func TestChainCommand_BadLineReportsLineNumber(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("(0,0),(3,5)\nbogus\n"))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"chain", "--policy", "add"})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want it to name line 2", err)
	}
}
