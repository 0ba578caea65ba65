package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/infrastructure/pdf"
)

func TestGenerateSlipPDF(t *testing.T) {
	order := entity.Order{
		ID:           "PS-1718006400000-ABC123XYZ",
		CustomerName: "Ada",
		Items: []entity.CartLineItem{
			{ID: "1", Name: "Engineering Notebook", Price: decimal.NewFromInt(6500), Quantity: 3},
		},
		Total:     decimal.NewFromInt(19500),
		Timestamp: "2024-06-10T08:00:00.000Z",
		Status:    entity.OrderStatusPending,
	}

	out, err := pdf.NewMarotoSlipGenerator("").GenerateSlipPDF(context.Background(), order, "0123456789ABCDEF")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSlipPDF_SinItems(t *testing.T) {
	order := entity.Order{ID: "PS-1-AAAAAAAAA", CustomerName: "Ada", Items: []entity.CartLineItem{}, Status: entity.OrderStatusCompleted}
	out, err := pdf.NewMarotoSlipGenerator("Campus").GenerateSlipPDF(context.Background(), order, "")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateSlipPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoSlipGenerator("").GenerateSlipPDF(ctx, entity.Order{ID: "x"}, "")
	assert.ErrorIs(t, err, context.Canceled)
}
