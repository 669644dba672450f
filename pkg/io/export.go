package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/figment/pkg/errors"
	"github.com/matzehuels/figment/pkg/render"
)

// WriteFrame encodes a rendered frame as primitives JSON and writes it to w.
// The encoding is the frame's canonical type-tagged form, indented for
// human diffing.
func WriteFrame(frame *render.Frame, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(frame); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode frame")
	}
	return nil
}

// ExportFrame writes a rendered frame to a file at path, creating or
// truncating it.
func ExportFrame(frame *render.Frame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()

	if err := WriteFrame(frame, f); err != nil {
		return err
	}
	return f.Close()
}
