// Package main implements shopctl, a command line front end for the shop
// components.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fsanano/go-shop/internal/account"
	"fsanano/go-shop/internal/pricing"
	"fsanano/go-shop/internal/seed"
	"fsanano/go-shop/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Exercise the shop managers and pricing helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(), newQuoteCmd(), newFeeCmd(), newSeedCmd())
	return root
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample shop session and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), runDemo())
		},
	}
}

// demoResult mirrors the classic walkthrough: one user, one product, one
// order, a quote, a payment and a status check.
type demoResult struct {
	UserAdded     bool                                  `json:"user_added"`
	ProductID     int                                   `json:"product_id"`
	OrderAccepted bool                                  `json:"order_accepted"`
	Reports       map[service.ReportKind]service.Report `json:"reports"`
	QuoteTotal    float64                               `json:"quote_total"`
	Payment       float64                               `json:"payment"`
	Status        account.Status                        `json:"status"`
}

func runDemo() demoResult {
	shop := service.NewShop(nil)

	res := demoResult{
		UserAdded: shop.Users.AddUser("John Doe", "john@example.com", 25),
		ProductID: shop.Products.AddProduct("Widget", 19.99, 100),
	}
	res.OrderAccepted = shop.Orders.ProcessOrder(1, res.ProductID, 5)
	res.Reports = allReports(shop)

	items := []pricing.LineItem{pricing.NewLineItem(10, 2), pricing.NewLineItem(15, 1)}
	res.QuoteTotal = pricing.CalculateTotal(items, 0.1, 0.08, 5.99, pricing.CurrencyUSD)
	res.Payment = pricing.CalculatePaymentWithFee(100, "credit")
	res.Status = account.GetUserStatus(&account.Account{
		Active:       true,
		Subscription: &account.Subscription{Status: account.SubscriptionActive, Plan: account.PlanPremium},
	})
	return res
}

func newQuoteCmd() *cobra.Command {
	var (
		rawItems []string
		discount float64
		tax      float64
		shipping float64
		currency string
	)

	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Price a list of items",
		Example: `  shopctl quote --item 10:2 --item 15:1 --discount 0.1 --tax 0.08 --shipping 5.99 --currency USD`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]pricing.LineItem, 0, len(rawItems))
			for _, raw := range rawItems {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}
			return writeJSON(cmd.OutOrStdout(), pricing.Quote(items, discount, tax, shipping, currency))
		},
	}

	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "Item as PRICE:QUANTITY (repeatable)")
	cmd.Flags().Float64Var(&discount, "discount", 0, "Discount rate, applied when between 0 and 1")
	cmd.Flags().Float64Var(&tax, "tax", 0, "Tax rate, applied when between 0 and 1")
	cmd.Flags().Float64Var(&shipping, "shipping", 0, "Shipping cost")
	cmd.Flags().StringVar(&currency, "currency", pricing.CurrencyUSD, "Currency code (USD, EUR, GBP)")
	return cmd
}

func parseItem(raw string) (pricing.LineItem, error) {
	priceStr, qtyStr, ok := strings.Cut(raw, ":")
	if !ok {
		return pricing.LineItem{}, fmt.Errorf("item %q: want PRICE:QUANTITY", raw)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return pricing.LineItem{}, fmt.Errorf("item %q: invalid price: %w", raw, err)
	}
	qty, err := strconv.ParseFloat(qtyStr, 64)
	if err != nil {
		return pricing.LineItem{}, fmt.Errorf("item %q: invalid quantity: %w", raw, err)
	}
	return pricing.NewLineItem(price, qty), nil
}

func newFeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fee AMOUNT METHOD",
		Short: "Apply the payment method surcharge to an amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(pricing.CalculatePaymentWithFee(amount, args[1]), 'f', -1, 64))
			return err
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Load a YAML seed file and print the resulting reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}
			shop := service.NewShop(nil)
			res := f.Apply(shop)
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"seed":    res,
				"reports": allReports(shop),
			})
		},
	}
}

func allReports(shop *service.Shop) map[service.ReportKind]service.Report {
	out := make(map[service.ReportKind]service.Report, len(service.ReportKinds))
	for _, kind := range service.ReportKinds {
		out[kind] = shop.Reports.GenerateReport(kind)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
