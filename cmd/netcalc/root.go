package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"netsize-service/internal/catalog"
	"netsize-service/internal/config"
	"netsize-service/internal/sizing/model"
	"netsize-service/internal/sizing/present"
	"netsize-service/internal/sizing/service"
	"netsize-service/internal/utils"
)

type options struct {
	catalog   string
	headerRow int
	unit      string
	color     string
	doors     []string
	priceType string
	asJSON    bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := options{
		catalog:   cfg.CatalogSource,
		headerRow: cfg.CatalogHeaderRow,
		unit:      "cm",
		color:     "black",
		priceType: cfg.DefaultPriceType,
	}

	cmd := &cobra.Command{
		Use:          "netcalc",
		Short:        "Find the door net size to order for the given door frames",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.catalog, "catalog", opts.catalog, "catalog file (.json/.csv/.xls/.xlsx) or http(s) URL")
	f.IntVar(&opts.headerRow, "header-row", opts.headerRow, "header row for spreadsheet catalogs (1-based)")
	f.StringVarP(&opts.unit, "unit", "u", opts.unit, "unit of the door sizes: cm, Inch or Feet")
	f.StringVar(&opts.color, "color", opts.color, "default net color: black, grey or brown")
	f.StringArrayVarP(&opts.doors, "door", "d", nil, "door frame as HxW[:color], repeatable")
	f.StringVar(&opts.priceType, "price-type", opts.priceType, "price type for the quote")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	_ = cmd.MarkFlagRequired("door")

	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, cfg config.Config, opts options) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	reqs, err := parseDoors(opts.doors, opts.unit, opts.color)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.CatalogTimeout)
	defer cancel()
	cat, st, err := catalog.Load(ctx, opts.catalog, opts.headerRow)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	if len(st.Skipped) > 0 {
		logger.Warn().Int("skipped", len(st.Skipped)).Str("source", opts.catalog).Msg("catalog rows skipped")
	}

	outcomes, err := service.Evaluate(reqs, cat)
	if err != nil {
		return err
	}
	batch := service.Summarize(outcomes)

	pr := present.New(cfg.SupportTeam)
	items := make([]string, 0, len(outcomes))
	displays := make([]present.Display, 0, len(outcomes))
	for _, o := range outcomes {
		items = append(items, pr.LineItem(o))
		displays = append(displays, pr.Render(o))
	}
	msg := present.SupportMessage(cfg.SupportTeam, items, batch.Exceeded)
	link := present.SupportLink(cfg.SupportPhone, msg)
	quote := present.NewQuote(batch.Orders, opts.priceType)

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results     []present.Display `json:"results"`
			Exceeded    bool              `json:"exceeded"`
			SupportLink string            `json:"supportLink,omitempty"`
			Quote       present.Quote     `json:"quote"`
		}{displays, batch.Exceeded, link, quote})
	}

	for _, d := range displays {
		fmt.Fprintln(out, d.Text())
		fmt.Fprintln(out)
	}
	if quote.Doors > 0 {
		fmt.Fprintf(out, "%s: %d door(s) x %s = %s\n", quote.PriceType, quote.Doors,
			utils.FormatFloat(quote.UnitPrice), utils.FormatFloat(quote.Total))
	}
	if link != "" {
		fmt.Fprintf(out, "Support: %s\n", link)
	}
	return nil
}

// parseDoors разбирает "210x115", "7X3.5:grey", "84*42:Brown".
// Нечисловой размер даёт 0: такую дверь отбракует Evaluate, остальные посчитаются.
func parseDoors(specs []string, unitStr, defColor string) ([]model.DoorRequest, error) {
	unit, err := model.ParseUnit(unitStr)
	if err != nil {
		return nil, err
	}
	out := make([]model.DoorRequest, 0, len(specs))
	for i, s := range specs {
		size, colorStr, found := strings.Cut(s, ":")
		if !found {
			colorStr = defColor
		}
		color, err := model.ParseColor(colorStr)
		if err != nil {
			return nil, fmt.Errorf("door %d: %w", i+1, err)
		}
		parts := strings.FieldsFunc(strings.ToLower(size), func(r rune) bool { return r == 'x' || r == '*' || r == '×' })
		if len(parts) != 2 {
			return nil, fmt.Errorf("door %d: want HxW, got %q", i+1, s)
		}
		h, _ := utils.ParseFloatLoose(parts[0])
		w, _ := utils.ParseFloatLoose(parts[1])
		out = append(out, model.DoorRequest{Index: i + 1, Height: h, Width: w, Unit: unit, Color: color})
	}
	return out, nil
}
