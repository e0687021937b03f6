package embedded

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/duckhunt.yaml": &fstest.MapFile{Data: []byte("fps: 15\n")},
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Fatal("Init(nil) should leave the package uninitialized")
	}
	if _, err := ReadFile("data/duckhunt.yaml"); err == nil {
		t.Error("ReadFile should fail before Init")
	}
	if Exists("data/duckhunt.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	t.Cleanup(func() { Init(nil) })

	data, err := ReadFile("data/duckhunt.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "fps") {
		t.Errorf("Unexpected content %q", data)
	}
}

func TestPathNormalization(t *testing.T) {
	Init(testFS())
	t.Cleanup(func() { Init(nil) })

	tests := []struct {
		path string
		want bool
	}{
		{"data/duckhunt.yaml", true},
		{"./data/duckhunt.yaml", true},
		{"data/missing.yaml", false},
		{"assets/duckhunt.png", false},
		{"duckhunt.yaml", false},
	}

	for _, tt := range tests {
		if got := Exists(tt.path); got != tt.want {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
