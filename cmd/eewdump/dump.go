package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ftl/eew-fastcast/eew"
)

type dumper struct {
	decoder  *eew.Decoder
	json     bool
	validate bool
	out      io.Writer
	logger   *slog.Logger

	count   int
	invalid int
}

// dump decodes all telegrams from r. Invalid telegrams are logged and counted, only read and write errors are returned.
func (d *dumper) dump(source string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(eew.SplitTelegrams)
	for scanner.Scan() {
		d.count++
		logger := d.logger.With("source", source, "index", d.count)

		bulletin, err := d.decoder.Parse(scanner.Text())
		if err != nil {
			d.invalid++
			logger.Error("invalid telegram", "error", err)
			continue
		}

		err = d.write(bulletin)
		if errors.Is(err, eew.ErrFormat) {
			d.invalid++
			logger.Error("invalid telegram", "telegram", bulletin.String(), "error", err)
			continue
		}
		if err != nil {
			return err
		}
		logger.Debug("telegram decoded", "telegram", bulletin.String())
	}
	return scanner.Err()
}

func (d *dumper) write(bulletin *eew.Bulletin) error {
	if d.validate {
		if err := bulletin.Validate(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(d.out, "%s: OK\n", bulletin)
		return err
	}

	if d.json {
		fields, err := bulletin.Fields()
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(d.out)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(fields)
	}

	text, err := bulletin.Text()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(d.out, text)
	return err
}

// outputEncodings contains the supported encodings of the output, by name.
var outputEncodings = map[string]encoding.Encoding{
	"utf-8":       unicode.UTF8,
	"shift_jis":   japanese.ShiftJIS,
	"euc-jp":      japanese.EUCJP,
	"iso-2022-jp": japanese.ISO2022JP,
}

// encodedWriter wraps w so that everything written is converted to the given encoding.
// Characters that cannot be encoded are replaced. The returned writer must be closed to flush pending output.
func encodedWriter(w io.Writer, name string) (io.WriteCloser, error) {
	codec, ok := outputEncodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported output encoding: %s", name)
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(codec.NewEncoder())), nil
}
