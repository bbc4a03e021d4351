package excel

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"accuracycheck/internal/errors"
	"accuracycheck/internal/logging"

	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelCell stands in for a LABELSST cell, which needs a shared string table to decode
type labelCell struct{ text string }

func (c labelCell) GetString() string { return c.text }
func (c labelCell) GetFloat64() float64 { return 0 }
func (c labelCell) GetInt64() int64 { return 0 }
func (c labelCell) GetXFIndex() int { return 15 }
func (c labelCell) GetType() string { return "labelCell" }

func numberCell(v float64) *record.Number {
	stream := make([]byte, 14)
	binary.LittleEndian.PutUint64(stream[6:], math.Float64bits(v))
	n := &record.Number{}
	n.Read(stream)
	return n
}

// rkIntCell encodes v as an RK integer (type bits 10)
func rkIntCell(v uint32) *record.Rk {
	stream := make([]byte, 10)
	binary.LittleEndian.PutUint32(stream[6:], v<<2|2)
	rk := &record.Rk{}
	rk.Read(stream)
	return rk
}

func TestXLSRowValues(t *testing.T) {
	cols := []structure.CellData{
		labelCell{text: "The cat sat"},
		new(record.FakeBlank),
		&record.Blank{},
		numberCell(2.5),
		rkIntCell(42),
		nil,
	}

	assert.Equal(t, []string{"The cat sat", "", "", "2.5", "42", ""}, xlsRowValues(cols))
	assert.Empty(t, xlsRowValues(nil))
}

func TestReadWorkbook_CorruptXLS(t *testing.T) {
	dir := t.TempDir()
	reader := NewDataReader(logging.Discard())

	garbage := filepath.Join(dir, "garbage.xls")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a compound file at all, just text"), 0o644))
	_, err := reader.ReadWorkbook(context.Background(), garbage)
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))

	empty := filepath.Join(dir, "empty.xls")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = reader.ReadWorkbook(context.Background(), empty)
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))

	_, err = reader.ReadWorkbook(context.Background(), filepath.Join(dir, "missing.xls"))
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}
