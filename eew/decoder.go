package eew

import (
	"github.com/ftl/eew-fastcast/codes"
)

// CodeTable resolves numeric codes to names.
type CodeTable interface {
	Lookup(code int) (string, bool)
}

// Decoder binds telegrams to the code tables and label texts that are used to decode them.
// A Decoder must not be modified while it is in use.
type Decoder struct {
	epicenters    CodeTable
	areas         CodeTable
	labels        Labels
	unsetLabel    string
	reservedLabel string
}

// NewDecoder returns a new decoder that uses the built-in epicenter and area tables and the default labels.
func NewDecoder() *Decoder {
	return NewDecoderWithTables(codes.Epicenters(), codes.Areas())
}

// NewDecoderWithTables returns a new decoder that uses the given epicenter and area tables and the default labels.
func NewDecoderWithTables(epicenters, areas CodeTable) *Decoder {
	return &Decoder{
		epicenters:    epicenters,
		areas:         areas,
		labels:        DefaultLabels(),
		unsetLabel:    UnspecifiedLabel,
		reservedLabel: ReservedLabel,
	}
}

// SetLabel replaces the text for a single raw value of the given field.
func (d *Decoder) SetLabel(field Field, raw string, label string) {
	labels, ok := d.labels[field]
	if !ok {
		labels = make(map[string]string)
		d.labels[field] = labels
	}
	labels[raw] = label
}

// SetLabels replaces all texts of the given field. Raw values without text fall back to the reserved or unset label.
func (d *Decoder) SetLabels(field Field, labels map[string]string) {
	d.labels[field] = copyLabels(labels)
}

// SetUnsetLabel replaces the text used for unset enumerated values.
func (d *Decoder) SetUnsetLabel(label string) {
	d.unsetLabel = label
}

// SetReservedLabel replaces the text used for reserved enumerated values.
func (d *Decoder) SetReservedLabel(label string) {
	d.reservedLabel = label
}

// Decode binds the given telegram to this decoder. The fields of the telegram are decoded on access.
func (d *Decoder) Decode(telegram *Telegram) *Bulletin {
	return &Bulletin{
		telegram: telegram,
		decoder:  d,
	}
}

// Parse creates a telegram from the given text and binds it to this decoder.
func (d *Decoder) Parse(text string) (*Bulletin, error) {
	telegram, err := New(text)
	if err != nil {
		return nil, err
	}
	return d.Decode(telegram), nil
}

func (d *Decoder) label(field Field, raw string, kind Kind) string {
	if label, ok := d.labels[field][raw]; ok {
		return label
	}
	switch kind {
	case Unset:
		return d.unsetLabel
	case Reserved:
		return d.reservedLabel
	default:
		return raw
	}
}

func (d *Decoder) code(telegram *Telegram, f codeField) (Code, error) {
	raw, err := telegram.field(f.field, f.offset, f.length)
	if err != nil {
		return Code{}, err
	}
	kind, ok := f.codes[raw]
	if !ok {
		return Code{}, formatError(f.field, raw)
	}
	return Code{
		Field: f.field,
		Raw:   raw,
		Kind:  kind,
		Label: d.label(f.field, raw, kind),
	}, nil
}
