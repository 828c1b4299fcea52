// Package view formatea records y mensajes para la terminal.
// Lo usan el CLI y el banner de arranque del servidor.
package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dropDatabas3/recordsvc/internal/domain/record"
)

// boxWidth es el ancho interior de las cajas (sin bordes).
const boxWidth = 37

// Console escribe salida humana en w.
type Console struct {
	w io.Writer
}

// NewConsole crea una Console sobre w. Nil usa stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Record muestra un record en una caja.
func (c *Console) Record(r record.Record) {
	c.line("┌" + strings.Repeat("─", boxWidth) + "┐")
	c.line("│" + center("RECORD", boxWidth) + "│")
	c.line("├" + strings.Repeat("─", boxWidth) + "┤")
	c.boxRow("│", "ID: "+strconv.Itoa(r.ID()), "│")
	c.boxRow("│", "Name: "+r.Name(), "│")
	c.boxRow("│", "Last Name: "+r.LastName(), "│")
	c.line("└" + strings.Repeat("─", boxWidth) + "┘")
}

// Records muestra una tabla alineada con el total al pie.
func (c *Console) Records(recs []record.Record) {
	if len(recs) == 0 {
		c.line("No records found.")
		return
	}

	tw := tabwriter.NewWriter(c.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLAST NAME")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID(), r.Name(), r.LastName())
	}
	_ = tw.Flush()
	c.line(fmt.Sprintf("Total records: %d", len(recs)))
}

// Success muestra un mensaje de éxito.
func (c *Console) Success(msg string) { c.line("✅ " + msg) }

// Error muestra un mensaje de error.
func (c *Console) Error(msg string) { c.line("❌ Error: " + msg) }

// Info muestra un mensaje informativo.
func (c *Console) Info(msg string) { c.line("ℹ️  " + msg) }

// Banner describe el servidor para el mensaje de arranque.
type Banner struct {
	Title     string
	Addr      string
	BaseURL   string
	Endpoints map[string]string // "MÉTODO ruta" -> descripción
}

// ServerStart muestra el banner de arranque con los endpoints disponibles.
func (c *Console) ServerStart(b Banner) {
	routes := make([]string, 0, len(b.Endpoints))
	for k := range b.Endpoints {
		routes = append(routes, k)
	}
	sort.Slice(routes, func(i, j int) bool {
		pi, pj := routePath(routes[i]), routePath(routes[j])
		if pi != pj {
			return pi < pj
		}
		return routes[i] < routes[j]
	})

	rows := []string{"Server listening on " + b.Addr, "API Base URL: " + b.BaseURL, b.Title}
	for _, r := range routes {
		rows = append(rows, alignMethod(r))
	}
	width := boxWidth
	for _, r := range rows {
		if n := utf8.RuneCountInString(r) + 2; n > width {
			width = n
		}
	}

	c.line("╔" + strings.Repeat("═", width) + "╗")
	c.line("║" + center(b.Title, width) + "║")
	c.line("╠" + strings.Repeat("═", width) + "╣")
	c.row("║", "Server listening on "+b.Addr, "║", width)
	c.row("║", "API Base URL: "+b.BaseURL, "║", width)
	c.row("║", "", "║", width)
	c.row("║", "Available endpoints:", "║", width)
	for _, r := range routes {
		c.row("║", alignMethod(r), "║", width)
	}
	c.line("╚" + strings.Repeat("═", width) + "╝")
}

func (c *Console) line(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *Console) boxRow(left, content, right string) {
	c.row(left, content, right, boxWidth)
}

func (c *Console) row(left, content, right string, width int) {
	c.line(left + " " + pad(truncate(content, width-2), width-2) + " " + right)
}

// pad completa s con espacios hasta n caracteres.
func pad(s string, n int) string {
	if d := n - utf8.RuneCountInString(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// truncate corta s a n caracteres marcando el corte con "…".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

func center(s string, n int) string {
	l := utf8.RuneCountInString(s)
	if l >= n {
		return truncate(s, n)
	}
	left := (n - l) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-l-left)
}

// alignMethod alinea "GET /x" como "GET    /x".
func alignMethod(route string) string {
	method, path, ok := strings.Cut(route, " ")
	if !ok {
		return route
	}
	return fmt.Sprintf("%-6s %s", method, path)
}

func routePath(route string) string {
	_, path, _ := strings.Cut(route, " ")
	return path
}
