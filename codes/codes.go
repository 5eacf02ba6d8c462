package codes

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Code is a numeric identifier as it appears in the fastcast telegram.
type Code int

// Table maps codes to names. A Table is immutable after construction and may be shared freely.
type Table struct {
	names map[Code]string
}

// NewTable returns a new table containing a copy of the given entries.
func NewTable(entries map[Code]string) *Table {
	names := make(map[Code]string, len(entries))
	for code, name := range entries {
		names[code] = name
	}
	return &Table{names: names}
}

// Lookup returns the name for the given code. The second result is false if the code is not part of the table.
func (t *Table) Lookup(code int) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[Code(code)]
	return name, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Codes returns all codes of the table in ascending order.
func (t *Table) Codes() []Code {
	if t == nil {
		return nil
	}
	result := make([]Code, 0, len(t.names))
	for code := range t.names {
		result = append(result, code)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// ErrDuplicateCode is returned when a code appears more than once in a table file.
var ErrDuplicateCode = errors.New("duplicate code")

// ReadCSV reads a table from CSV records of the form "code,name". Empty lines and lines starting with # are ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	names := make(map[Code]string)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read code table: %w", err)
		}

		line, _ := reader.FieldPos(0)
		value, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid code %q in line %d: %w", record[0], line, err)
		}
		code := Code(value)
		if _, ok := names[code]; ok {
			return nil, fmt.Errorf("code %d in line %d: %w", code, line, ErrDuplicateCode)
		}
		names[code] = strings.TrimSpace(record[1])
	}

	return &Table{names: names}, nil
}

// LoadFile reads a table from the CSV file with the given name.
func LoadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return result, nil
}

//go:embed data/*.csv
var data embed.FS

func loadEmbedded(name string) func() (*Table, error) {
	return sync.OnceValues(func() (*Table, error) {
		f, err := data.Open("data/" + name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	})
}

var (
	epicenters = loadEmbedded("epicenter.csv")
	areas      = loadEmbedded("area.csv")
)

// Epicenters returns the built-in table of epicenter names (震央地名コード).
func Epicenters() *Table {
	return mustLoad(epicenters)
}

// Areas returns the built-in table of forecast area names used in the EBI block (地域名コード).
func Areas() *Table {
	return mustLoad(areas)
}

func mustLoad(load func() (*Table, error)) *Table {
	result, err := load()
	if err != nil {
		panic(fmt.Sprintf("built-in code table is broken: %v", err))
	}
	return result
}
