// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package semantic

import (
	"os"
	"path/filepath"
	"runtime"
)

// ModelLocator resolves model artifacts and the ONNX runtime library on the
// local filesystem.
type ModelLocator struct {
	// BaseDir is the base directory for model storage.
	BaseDir string
}

// NewModelLocator returns a locator rooted at ~/.intentgate/models.
func NewModelLocator() *ModelLocator {
	homeDir, _ := os.UserHomeDir()
	return &ModelLocator{
		BaseDir: filepath.Join(homeDir, ".intentgate", "models"),
	}
}

// ModelPath returns the ONNX model file path for a model name.
func (l *ModelLocator) ModelPath(modelName string) string {
	return filepath.Join(l.BaseDir, modelName, "model.onnx")
}

// VocabPath returns the vocabulary file path for a model name.
func (l *ModelLocator) VocabPath(modelName string) string {
	return filepath.Join(l.BaseDir, modelName, "vocab.txt")
}

// SharedLibraryPath returns the first ONNX runtime shared library found in
// the platform's common install locations, or empty if none exists.
func (l *ModelLocator) SharedLibraryPath() string {
	var paths []string

	switch runtime.GOOS {
	case "darwin":
		paths = []string{
			"/usr/local/lib/libonnxruntime.dylib",
			"/opt/homebrew/lib/libonnxruntime.dylib",
			filepath.Join(l.BaseDir, "..", "lib", "libonnxruntime.dylib"),
		}
	case "linux":
		paths = []string{
			"/usr/local/lib/libonnxruntime.so",
			"/usr/lib/libonnxruntime.so",
			"/usr/lib/x86_64-linux-gnu/libonnxruntime.so",
			filepath.Join(l.BaseDir, "..", "lib", "libonnxruntime.so"),
		}
	case "windows":
		paths = []string{
			`C:\Program Files\onnxruntime\lib\onnxruntime.dll`,
			filepath.Join(l.BaseDir, "..", "lib", "onnxruntime.dll"),
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
