package cmd

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/msto63/bstr/pkg/core/config"
	"github.com/msto63/bstr/pkg/core/version"
)

// goldenCase is one command line of a txtar archive. Case files are named
// <case>/args, <case>/stdin, <case>/stdout, <case>/stderr and <case>/exit;
// every other file is written to the working directory.
type goldenCase struct {
	name   string
	args   []string
	stdin  string
	stdout string
	stderr string
	exit   int
}

func parseArchive(t *testing.T, ar *txtar.Archive) ([]*goldenCase, []txtar.File) {
	t.Helper()

	var (
		cases   []*goldenCase
		workdir []txtar.File
	)
	byName := map[string]*goldenCase{}
	for _, f := range ar.Files {
		dir, kind := path.Split(f.Name)
		name := strings.TrimSuffix(dir, "/")
		if name == "" {
			workdir = append(workdir, f)
			continue
		}

		tc, ok := byName[name]
		if !ok {
			tc = &goldenCase{name: name}
			byName[name] = tc
			cases = append(cases, tc)
		}

		data := string(f.Data)
		switch kind {
		case "args":
			tc.args = parseArgs(t, data)
		case "stdin":
			tc.stdin = data
		case "stdout":
			tc.stdout = data
		case "stderr":
			tc.stderr = data
		case "exit":
			code, err := strconv.Atoi(strings.TrimSpace(data))
			if err != nil {
				t.Fatalf("%s: bad exit code %q", f.Name, data)
			}
			tc.exit = code
		default:
			t.Fatalf("unknown case file %s", f.Name)
		}
	}
	return cases, workdir
}

// parseArgs returns one argument per line; Go-quoted lines are unquoted
func parseArgs(t *testing.T, data string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")
	args := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, `"`) {
			unquoted, err := strconv.Unquote(line)
			if err != nil {
				t.Fatalf("bad quoted argument %s: %v", line, err)
			}
			line = unquoted
		}
		args = append(args, line)
	}
	return args
}

// isolate runs the test in an empty directory without user configuration
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{config.EnvConfig, config.EnvLogLevel, config.EnvLogFormat, config.EnvOutput, config.EnvBase} {
		t.Setenv(key, "")
	}
	t.Chdir(dir)
	return dir
}

func run(args []string, stdin string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := Run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no golden files: %v", err)
	}

	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		cases, workdir := parseArchive(t, ar)

		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					dir := isolate(t)
					for _, f := range workdir {
						if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644); err != nil {
							t.Fatal(err)
						}
					}

					stdout, stderr, code := run(tc.args, tc.stdin)
					if diff := cmp.Diff(tc.stdout, stdout); diff != "" {
						t.Errorf("bstr %q stdout mismatch (-want +got):\n%s", tc.args, diff)
					}
					if diff := cmp.Diff(tc.stderr, stderr); diff != "" {
						t.Errorf("bstr %q stderr mismatch (-want +got):\n%s", tc.args, diff)
					}
					if code != tc.exit {
						t.Errorf("bstr %q exit = %d, want %d", tc.args, code, tc.exit)
					}
				})
			}
		})
	}
}

func TestInspect(t *testing.T) {
	isolate(t)

	stdout, stderr, code := run([]string{"-o", "json", "inspect", "e\u0301a\xff"}, "")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, stderr)
	}

	var got inspectOutput
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output %q: %v", stdout, err)
	}
	if got.Bytes != 5 || got.CodePoints != 4 || got.WellFormed {
		t.Errorf("summary = %+v", got)
	}
	wantChars := []charInfo{
		{Offset: 0, CodePoint: "U+0065", UTF8: "65"},
		{Offset: 1, CodePoint: "U+0301", UTF8: "cc81"},
		{Offset: 3, CodePoint: "U+0061", UTF8: "61"},
		{Offset: 4, CodePoint: "-", UTF8: "ff"},
	}
	if diff := cmp.Diff(wantChars, got.Chars); diff != "" {
		t.Errorf("chars mismatch (-want +got):\n%s", diff)
	}
	if len(got.Hash) != 16 {
		t.Errorf("hash = %q", got.Hash)
	}

	stdout, _, code = run([]string{"inspect", "e\u0301a"}, "")
	if code != 0 {
		t.Fatalf("text exit = %d", code)
	}
	for _, want := range []string{"Bytes", "Grapheme", "2", "U+0301", "'a'"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("text output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, _ = run([]string{"-o", "json", "inspect", "e\u0301"}, "")
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatal(err)
	}
	if got.Graphemes != 1 || got.Width != 1 {
		t.Errorf("graphemes = %d, width = %d; want 1, 1", got.Graphemes, got.Width)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, code := run([]string{"version"}, "")
	if code != 0 || !strings.HasPrefix(stdout, "bstr "+version.Toolkit) {
		t.Errorf("version = %q, exit %d", stdout, code)
	}

	stdout, _, _ = run([]string{"version", "--output", "json"}, "")
	var info version.Info
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("json version %q: %v", stdout, err)
	}
	if info.Version != version.Toolkit || info.Components["stringx"] != version.Stringx {
		t.Errorf("info = %+v", info)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)

	stdout, stderr, code := run([]string{"--verbose", "upper", "abc"}, "")
	if code != 0 || stdout != "ABC\n" {
		t.Fatalf("stdout = %q, exit %d", stdout, code)
	}
	for _, want := range []string{"[DBG]", "configuration loaded", "upper completed"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestErrorIsLoggedAtInfo(t *testing.T) {
	isolate(t)

	_, stderr, code := run([]string{"--log-level", "info", "atol", "1__0"}, "")
	if code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
	if !strings.HasPrefix(stderr, "error [NUMX_INVALID_LITERAL]: ") {
		t.Errorf("stderr = %q", stderr)
	}
	for _, want := range []string{"[INF]", "error_code=NUMX_INVALID_LITERAL", "error_input=1__0"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	isolate(t)

	if stdout, _, _ := run([]string{"-o", "json", "atol", "--base", "16", "ff"}, ""); !strings.Contains(stdout, `"value":255`) {
		t.Fatalf("first run = %q", stdout)
	}
	stdout, _, code := run([]string{"atol", "42"}, "")
	if code != 0 || stdout != "42\n" {
		t.Errorf("second run = %q, exit %d", stdout, code)
	}
}
