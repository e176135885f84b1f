package acquire

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	// register the jpeg decoder; png registers via the import above
	_ "image/jpeg"

	"cargoscan/internal/domain"
)

// imageOCR decodes a raster upload, optionally cleans it up, and runs a
// single tesseract pass.
func (a *Acquirer) imageOCR(ctx context.Context, doc domain.RawDocument) (AcquiredText, error) {
	img, _, err := image.Decode(bytes.NewReader(doc.Data))
	if err != nil {
		return AcquiredText{}, &DecodeError{Kind: doc.Kind, Err: err}
	}

	var toWrite image.Image = img
	if a.cfg.Preprocess {
		toWrite = Preprocess(img)
	}

	tmpDir, err := os.MkdirTemp("", "cargoscan-ocr-*")
	if err != nil {
		return AcquiredText{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	path := filepath.Join(tmpDir, "input.png")
	if err := writePNG(path, toWrite); err != nil {
		return AcquiredText{}, fmt.Errorf("writing temp image: %w", err)
	}

	txt, err := a.runTesseract(ctx, path, 1)
	if err != nil {
		return AcquiredText{}, err
	}

	return AcquiredText{Text: txt, Pages: 1, Method: MethodImageOCR}, nil
}

// runTesseract invokes the OCR engine with the configured language and
// engine/segmentation modes. page is 1-based, for error context only.
//
// tesseract <file> stdout -l <lang> --oem <oem> --psm <psm>
func (a *Acquirer) runTesseract(ctx context.Context, path string, page int) (string, error) {
	args := []string{
		path, "stdout",
		"-l", a.cfg.Lang,
		"--oem", strconv.Itoa(a.cfg.OEM),
		"--psm", strconv.Itoa(a.cfg.PSM),
	}
	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return "", &EngineError{
			Engine: "tesseract",
			Page:   page,
			Stderr: truncate(string(errb), 8<<10),
			Err:    err,
		}
	}
	return string(out), nil
}

// preprocessFile cleans a rendered page image in place.
func (a *Acquirer) preprocessFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return writePNG(path, Preprocess(img))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
