package document

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/precast-erp/backend/internal/application/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderLabels(t *testing.T) {
	r := NewRenderer()

	labels := make([]common.Label, 9)
	for i := range labels {
		labels[i] = common.Label{
			Code:  fmt.Sprintf("PIECE:DT-%03d", i),
			Title: fmt.Sprintf("DT-%03d", i),
			Lines: []string{"Double Tee", "18.5 t", "Zone Nörd / A-01"},
		}
	}

	out, err := r.RenderLabels("Piece tags", labels)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/Count 2", "nine labels span two pages")
}

func TestRenderer_RenderLabels_Empty(t *testing.T) {
	out, err := NewRenderer().RenderLabels("Piece tags", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/Count 1")
}

func TestRenderer_RenderDocument(t *testing.T) {
	out, err := NewRenderer().RenderDocument(common.Document{
		Title:  "BILL OF LADING",
		Number: "SHP-20260101-ABC123",
		Fields: []common.Field{
			{Label: "Carrier", Value: "Heavy Haul Ltd"},
			{Label: "Deliver to", Value: "12 Harbour Rd"},
		},
		Table: common.Table{
			Headers: []string{"Piece", "Type", "Weight (t)"},
			Rows:    [][]any{{"DT-001", "Double Tee", "18.500"}, {"WP-7", nil}},
		},
		Totals:     []common.Field{{Label: "Total weight", Value: "18.500 t"}},
		Signatures: []string{"Shipper", "Driver", "Receiver"},
		Footer:     "Generated by precast-erp",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "/Count 1")
}
