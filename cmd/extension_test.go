package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// cip-hello prints the environment it receives, and its arguments.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%s\n", strings.Join(os.Args[1:], ","))
}
`, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "cip-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write cip-hello source: %v", err)
	}
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile cip-hello: %v", err)
	}

	cipBinaryPath := filepath.Join(tempDir, "cip")
	cmd = exec.Command("go", "build", "-o", cipBinaryPath, "../cip")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile cip binary: %v", err)
	}

	args := []string{
		"-currency", "USD",
		"-v",
		"hello", // The extension subcommand
		"a", "b",
	}
	cipCmd := exec.Command(cipBinaryPath, args...)
	cipCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	cipCmd.Stdout = &stdout
	cipCmd.Stderr = &stderr
	if err := cipCmd.Run(); err != nil {
		t.Fatalf("cip command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvCurrency + "=USD",
		EnvVerbose + "=" + strconv.FormatBool(true),
		"args=a,b",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("does-not-exist", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
