// Package ocr reads dimension labels from floor-plan images using Tesseract.
//
// The package wraps the Tesseract OCR engine (via gosseract/v2) behind the
// Engine interface so that callers can substitute fakes in tests and so
// that every engine has an explicit lifecycle:
//
//	engine, err := factory()
//	if err != nil {
//		// ErrOCRUnavailable: degrade, do not abort
//	}
//	defer engine.Close()
//	words, err := engine.Recognize(ctx, img)
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Set Options.TessdataPrefix when the traineddata files live outside the
// default search path.
//
// # Preprocessing
//
// Plans are coloured and often small. Before recognition, images narrower
// than Options.MinWidth are upscaled, converted to grayscale and binarised
// (see Preprocess). Returned word boxes are always in the coordinates of
// the image passed to Recognize.
//
// # Timeouts
//
// Recognize honours context cancellation. The native call cannot be
// interrupted, but the caller is released as soon as the context expires.
package ocr
