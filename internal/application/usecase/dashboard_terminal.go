package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// RunSummary mostra no terminal os totais, a tabela diária e o gráfico de barras do intervalo.
func (uc *DashboardUseCase) RunSummary(ctx context.Context, args *types.CLIArgs) error {
	r, err := uc.ResolveRange(args.Preset, args.From, args.To)
	if err != nil {
		return err
	}

	status := uc.console.Status(fmt.Sprintf("Fetching transactions for %s...", r.Label()))
	view := uc.Load(ctx, r)
	status.Stop()

	if view.Failed() {
		return errors.Join(view.Summary.Err, view.Records.Err)
	}

	uc.console.Printf("\n%s\n\n", pterm.FgYellow.Sprintf("%s Sales | %s", uc.cfg.BrandName, view.Label))

	switch {
	case view.Summary.Err != nil:
		uc.console.LogError("Summary unavailable: %s", view.Summary.Err)
	case view.Summary.Empty:
		uc.console.LogWarning("No transactions recorded for %s", view.Label)
	default:
		uc.console.Print(uc.summaryTable(view.Summary).Render())
		uc.console.DisplaySalesBars(fmt.Sprintf("Daily Sales | %s", view.Label), salesBars(view.Summary.Chart))
	}

	switch {
	case view.Records.Err != nil:
		uc.console.LogError("Transaction details unavailable: %s", view.Records.Err)
	case view.Records.Empty:
		uc.console.LogInfo("No individual transactions for this period")
	default:
		refunds := report.Filter(view.Records.Rows, "", entity.StatusRefund)
		uc.console.LogInfo("%d transaction(s) in the detail report, %d refund(s)", len(view.Records.Rows), len(refunds))
	}

	return nil
}

// RunExport grava os artefatos pedidos em args.Dir. Uma exportação que falha
// não interrompe as demais.
func (uc *DashboardUseCase) RunExport(ctx context.Context, args *types.CLIArgs) error {
	r, err := uc.ResolveRange(args.Preset, args.From, args.To)
	if err != nil {
		return err
	}

	kinds, formats, err := parseExportArgs(args)
	if err != nil {
		return err
	}

	dir := args.Dir
	if dir == "" {
		dir = uc.cfg.Export.Dir
	}
	if dir == "" {
		dir = "."
	}

	total := len(kinds) * len(formats)
	progress := uc.console.ProgressWithTotal(total, fmt.Sprintf("Exporting %s", r.Label()))
	failed := 0

	for _, kind := range kinds {
		for _, format := range formats {
			path, err := uc.exportOne(ctx, kind, format, r, dir)
			progress.Increment()
			if err != nil {
				failed++
				uc.console.LogError("Failed to export %s to %s: %s", kind, format, err)
				continue
			}
			uc.console.LogSuccess("Successfully exported %s to %s: %s", kind, format, path)
		}
	}
	progress.Stop()

	if failed > 0 {
		return fmt.Errorf("%d of %d exports failed", failed, total)
	}
	return nil
}

func (uc *DashboardUseCase) exportOne(ctx context.Context, kind entity.ArtifactKind, format entity.ExportFormat, r entity.DateRange, dir string) (string, error) {
	artifact, err := uc.Export(ctx, kind, format, r)
	if err != nil {
		return "", err
	}
	path, err := uc.exportRepo.SaveArtifact(dir, artifact)
	if err != nil {
		return "", &types.ExportError{Kind: string(kind), Format: string(format), Err: err}
	}
	return path, nil
}

func parseExportArgs(args *types.CLIArgs) ([]entity.ArtifactKind, []entity.ExportFormat, error) {
	kindNames := args.Kinds
	if len(kindNames) == 0 {
		kindNames = []string{string(entity.KindSummary), string(entity.KindReport)}
	}
	formatNames := args.Formats
	if len(formatNames) == 0 {
		formatNames = []string{string(entity.FormatCSV), string(entity.FormatPDF)}
	}

	kinds := make([]entity.ArtifactKind, 0, len(kindNames))
	for _, name := range kindNames {
		kind, err := entity.ParseArtifactKind(name)
		if err != nil {
			return nil, nil, err
		}
		kinds = append(kinds, kind)
	}

	formats := make([]entity.ExportFormat, 0, len(formatNames))
	for _, name := range formatNames {
		format, err := entity.ParseExportFormat(name)
		if err != nil {
			return nil, nil, err
		}
		formats = append(formats, format)
	}
	return kinds, formats, nil
}

// summaryTable cria a tabela diária com uma linha final de totais.
func (uc *DashboardUseCase) summaryTable(section SummarySection) types.TableInterface {
	currency := uc.cfg.Currency
	table := uc.console.CreateTable()

	table.AddColumn("Date")
	table.AddColumn("Transactions")
	table.AddColumn("Total Amount")
	table.AddColumn("Net Sales")
	table.AddColumn("Tax")

	for _, s := range section.Rows {
		table.AddRow(
			s.Date.Format("Mon, Jan 2"),
			strconv.Itoa(s.Count),
			report.FormatCurrency(currency, s.TotalAmount),
			report.FormatCurrency(currency, s.NetSales),
			report.FormatCurrency(currency, s.TotalTax),
		)
	}

	table.AddRow(
		pterm.Bold.Sprint("Total"),
		pterm.Bold.Sprint(strconv.Itoa(section.Totals.Count)),
		pterm.FgGreen.Sprint(report.FormatCurrency(currency, section.Totals.TotalAmount)),
		pterm.FgGreen.Sprint(report.FormatCurrency(currency, section.Totals.NetSales)),
		report.FormatCurrency(currency, section.Totals.TotalTax),
	)

	return table
}

func salesBars(points []entity.ChartPoint) []types.SalesBar {
	bars := make([]types.SalesBar, len(points))
	for i, p := range points {
		bars[i] = types.SalesBar{
			Label:    p.Label,
			Amount:   p.TotalAmount.InexactFloat64(),
			NetSales: p.NetSales.InexactFloat64(),
			Count:    p.Count,
		}
	}
	return bars
}
