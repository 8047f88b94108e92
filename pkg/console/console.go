package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// Formatos de log aceitos por --log-format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Console é uma implementação do ConsoleInterface.
// Com logger definido, as mensagens saem como logs estruturados e os
// elementos interativos (spinner, barra de progresso) são desativados.
type Console struct {
	out    io.Writer
	logger *pterm.Logger
}

// NewConsole cria um novo Console interativo.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewJSONConsole cria um Console que escreve logs JSON em w, para serviços de longa duração.
func NewJSONConsole(w io.Writer) *Console {
	logger := pterm.DefaultLogger.
		WithFormatter(pterm.LogFormatterJSON).
		WithWriter(w).
		WithLevel(pterm.LogLevelInfo)
	return &Console{out: w, logger: logger}
}

// NewDiscardConsole descarta toda a saída.
func NewDiscardConsole() *Console {
	return NewJSONConsole(io.Discard)
}

// New escolhe o console pelo formato de log.
func New(format string) (*Console, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewConsole(), nil
	case FormatJSON:
		return NewJSONConsole(os.Stdout), nil
	}
	return nil, fmt.Errorf("unsupported log format %q (use %s or %s)", format, FormatText, FormatJSON)
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	if c.logger != nil {
		c.logger.Info(fmt.Sprintf(format, a...))
		return
	}
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(fmt.Sprintf(format, a...))
		return
	}
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	if c.logger != nil {
		c.logger.Error(fmt.Sprintf(format, a...))
		return
	}
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	if c.logger != nil {
		c.logger.Info(fmt.Sprintf(format, a...), c.logger.Args("outcome", "success"))
		return
	}
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if c.logger != nil {
		c.logger.Info(message)
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com total etapas.
func (c *Console) ProgressWithTotal(total int, title string) types.ProgressHandle {
	if c.logger != nil || total <= 0 {
		return &progressHandle{}
	}
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		_, _ = h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

const barWidth = 40

// DisplaySalesBars exibe o gráfico de barras das vendas diárias, com a variação dia a dia.
func (c *Console) DisplaySalesBars(title string, bars []types.SalesBar) {
	if c.logger != nil {
		for _, b := range bars {
			c.logger.Info(title, c.logger.Args("day", b.Label, "amount", b.Amount, "net_sales", b.NetSales, "count", b.Count))
		}
		return
	}

	maxAmount := 0.0
	for _, b := range bars {
		if b.Amount > maxAmount {
			maxAmount = b.Amount
		}
	}

	if maxAmount <= 0 {
		pterm.Warning.Println("No sales recorded for this period")
		return
	}

	tableData := pterm.TableData{
		{"Day", "Sales", "", "Transactions", "DoD Change"},
	}

	var prevAmount *float64

	for _, b := range bars {
		barLength := int(math.Round((b.Amount / maxAmount) * barWidth))
		if barLength < 0 {
			barLength = 0
		}
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevAmount != nil {
			if *prevAmount < 0.01 {
				if b.Amount < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprint("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := ((b.Amount - *prevAmount) / *prevAmount) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 999:
					change = pterm.FgGreen.Sprint(">+999%")
					barColor = pterm.FgGreen.Sprint(bar)
				case changePercent > 0:
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				default:
					// Vendas menores que o dia anterior.
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			b.Label,
			fmt.Sprintf("%.2f", b.Amount),
			barColor,
			fmt.Sprintf("%d", b.Count),
			change,
		})

		current := b.Amount
		prevAmount = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Fprintln(c.out, "\n"+panel)
}
