package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/go-shop/internal/account"
	"fsanano/go-shop/internal/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDemo(t *testing.T) {
	res := runDemo()

	assert.True(t, res.UserAdded)
	assert.Equal(t, 1, res.ProductID)
	assert.True(t, res.OrderAccepted)
	assert.Equal(t, 40.01, res.QuoteTotal)
	assert.Equal(t, 103.0, res.Payment)
	assert.Equal(t, account.StatusPremiumActive, res.Status)

	sales := res.Reports[service.ReportSales].(service.SalesReport)
	assert.Equal(t, 1, sales.Count)
}

func TestQuoteCmd(t *testing.T) {
	out, err := run(t, "quote", "--item", "10:2", "--item", "15:1", "--discount", "0.1", "--tax", "0.08", "--shipping", "5.99")
	require.NoError(t, err)

	var body map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 40.01, body["total"])

	_, err = run(t, "quote", "--item", "10")
	assert.ErrorContains(t, err, "PRICE:QUANTITY")
}

func TestFeeCmd(t *testing.T) {
	out, err := run(t, "fee", "100", "credit")
	require.NoError(t, err)
	assert.Equal(t, "103", strings.TrimSpace(out))

	out, err = run(t, "fee", "100", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "100", strings.TrimSpace(out))

	_, err = run(t, "fee", "lots", "credit")
	assert.Error(t, err)
}

func TestSeedCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - name: x\n    price: 1\n    stock: 5\n"), 0o600))

	out, err := run(t, "seed", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"products_added": 1`)
	assert.Contains(t, out, `"low_stock": [`)
}
