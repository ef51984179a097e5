package validate

import (
	"errors"
	"testing"
)

func TestValidateFilePath_Relative(t *testing.T) {
	v := New()

	got, err := v.ValidateFilePath("src/Main.java")
	if err != nil {
		t.Fatalf("ValidateFilePath failed: %v", err)
	}
	if got != "src/Main.java" {
		t.Errorf("expected unchanged path, got %q", got)
	}
}

func TestValidateFilePath_Traversal(t *testing.T) {
	v := New()

	paths := []string{
		"/project/../../etc/passwd",
		"../secret.txt",
		"src/./Main.java",
		"src/.hidden/file.java",
	}

	for _, path := range paths {
		if _, err := v.ValidateFilePath(path); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("ValidateFilePath(%q): expected ErrPathTraversal, got %v", path, err)
		}
	}
}

func TestValidateFilePath_Empty(t *testing.T) {
	v := New()

	if _, err := v.ValidateFilePath(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("expected ErrEmptyPath, got %v", err)
	}
}

func TestValidateFilePath_TooLong(t *testing.T) {
	v := New()

	long := make([]byte, DefaultMaxPathLength+1)
	for i := range long {
		long[i] = 'a'
	}

	if _, err := v.ValidateFilePath(string(long)); !errors.Is(err, ErrPathTooLong) {
		t.Errorf("expected ErrPathTooLong, got %v", err)
	}
}

func TestValidateFilePath_AllowedRoots(t *testing.T) {
	v := New()

	if _, err := v.ValidateFilePath("/data/data/app/files/Main.java"); err != nil {
		t.Errorf("expected app-data path to pass, got %v", err)
	}
	if _, err := v.ValidateFilePath("/storage/emulated/0/notes.txt"); err != nil {
		t.Errorf("expected storage path to pass, got %v", err)
	}
	if _, err := v.ValidateFilePath("/etc/passwd"); !errors.Is(err, ErrPathOutsideRoots) {
		t.Errorf("expected ErrPathOutsideRoots, got %v", err)
	}
}

func TestValidateFilePath_CustomRoots(t *testing.T) {
	v := New(WithAllowedRoots("/workspace/"))

	if _, err := v.ValidateFilePath("/workspace/src/main.go"); err != nil {
		t.Errorf("expected custom root to pass, got %v", err)
	}
	if _, err := v.ValidateFilePath("/data/data/app/file"); !errors.Is(err, ErrPathOutsideRoots) {
		t.Errorf("expected ErrPathOutsideRoots for default root, got %v", err)
	}
}

func TestValidateFilePath_Charset(t *testing.T) {
	v := New()

	paths := []string{
		"src/Main java",
		"src/Main#.java",
		"src/Main\x00.java",
	}

	for _, path := range paths {
		if _, err := v.ValidateFilePath(path); !errors.Is(err, ErrPathCharset) {
			t.Errorf("ValidateFilePath(%q): expected ErrPathCharset, got %v", path, err)
		}
	}
}

func TestValidateLSPRequest(t *testing.T) {
	v := New()

	req, err := v.ValidateLSPRequest("req42", "textDocument/completion", `{"position":{"line":1,"character":2}}`)
	if err != nil {
		t.Fatalf("ValidateLSPRequest failed: %v", err)
	}
	if req.ID() != "req42" {
		t.Errorf("expected id req42, got %q", req.ID())
	}
	if req.Method() != "textDocument/completion" {
		t.Errorf("expected method preserved, got %q", req.Method())
	}
}

func TestValidateLSPRequest_Rejections(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		id      string
		method  string
		params  string
		wantErr error
	}{
		{"empty id", "", "initialize", "", ErrEmptyRequestID},
		{"id with dash", "req-1", "initialize", "", ErrInvalidRequestID},
		{"empty method", "req1", "", "", ErrInvalidMethod},
		{"method with space", "req1", "text document", "", ErrInvalidMethod},
		{"method with dot", "req1", "text.completion", "", ErrInvalidMethod},
		{"non-json params", "req1", "initialize", "not json", ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateLSPRequest(tt.id, tt.method, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateLSPRequest_EmptyParams(t *testing.T) {
	v := New()

	if _, err := v.ValidateLSPRequest("req1", "shutdown", ""); err != nil {
		t.Errorf("expected empty params to pass, got %v", err)
	}
	if _, err := v.ValidateLSPRequest("req1", "initialize", "[]"); err != nil {
		t.Errorf("expected array params to pass, got %v", err)
	}
}

func TestValidateDebugCommand(t *testing.T) {
	v := New()

	for _, name := range []string{
		"start", "stop", "continue", "stepOver", "stepInto", "stepOut",
		"toggleBreakpoint", "addWatch", "removeWatch", "evaluate",
	} {
		cmd, err := v.ValidateDebugCommand(name, "")
		if err != nil {
			t.Errorf("ValidateDebugCommand(%q) failed: %v", name, err)
			continue
		}
		if string(cmd.Command()) != name {
			t.Errorf("expected command %q, got %q", name, cmd.Command())
		}
	}
}

func TestValidateDebugCommand_Rejections(t *testing.T) {
	v := New()

	if _, err := v.ValidateDebugCommand("launch", ""); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
	if _, err := v.ValidateDebugCommand("start", "bogus"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestContainsDangerousContent(t *testing.T) {
	dangerous := []string{
		"<script>alert(1)</script>",
		"javascript:void(0)",
		`<img onerror=alert(1)>`,
		"<iframe src='x'>",
		"1 UNION SELECT password FROM users",
		"foo; rm -rf /",
		"`whoami`",
		"$HOME",
		"a | b",
	}
	for _, text := range dangerous {
		if !ContainsDangerousContent(text) {
			t.Errorf("expected %q to be flagged", text)
		}
	}

	safe := []string{
		"src/Main.java",
		"count_value",
		"hello world",
		"",
	}
	for _, text := range safe {
		if ContainsDangerousContent(text) {
			t.Errorf("expected %q to be safe", text)
		}
	}
}
