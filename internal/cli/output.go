package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/filemonitor/pkg/fmerrors"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// textMarshaler is implemented by command results that have a plain text
// rendering.
type textMarshaler interface {
	Text() string
}

// printer writes command results in the configured output format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch f := strings.ToLower(format); f {
	case outputText, outputJSON, outputYAML:
		return &printer{w: w, format: f}, nil
	default:
		return nil, fmt.Errorf("%w: output %q", fmerrors.ErrInvalidFormat, format)
	}
}

func (p *printer) Print(v textMarshaler) error {
	var (
		out []byte
		err error
	)

	switch p.format {
	case outputJSON:
		out, err = json.Marshal(v)
		out = append(out, '\n')
	case outputYAML:
		out, err = yaml.Marshal(v)
	default:
		out = []byte(v.Text() + "\n")
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", p.format, err)
	}

	_, err = p.w.Write(out)

	return err
}
