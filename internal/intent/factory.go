// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package intent

import (
	"fmt"

	"github.com/traylinx/intentGate/internal/intent/routes"
	"github.com/traylinx/intentGate/internal/intent/semantic"
)

// OnnxSlowFactory returns a SlowFactory that loads the ONNX sentence encoder
// and builds the semantic classifier over the built-in slow catalog. The
// heavy work (runtime init, model load, encoding every catalog example)
// all happens inside the factory, so it runs at most once.
func OnnxSlowFactory(modelPath, vocabPath, sharedLibPath string, threshold float64) SlowFactory {
	return func() (SlowClassifier, error) {
		encoder, err := semantic.NewOnnxEncoder(semantic.EncoderConfig{
			ModelPath: modelPath,
			VocabPath: vocabPath,
		})
		if err != nil {
			return nil, fmt.Errorf("create encoder: %w", err)
		}
		if err := encoder.Initialize(sharedLibPath); err != nil {
			return nil, fmt.Errorf("initialize encoder: %w", err)
		}

		classifier, err := semantic.NewClassifier(routes.SlowCatalog(), encoder, threshold)
		if err != nil {
			encoder.Shutdown()
			return nil, fmt.Errorf("build semantic classifier: %w", err)
		}
		return classifier, nil
	}
}
