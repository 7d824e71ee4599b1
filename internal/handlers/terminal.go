// internal/handlers/terminal.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
)

// LineReader is the input side of the terminal. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
}

const helpText = `Commands:
  set <field> <value>   type into a form input (name, price, quantity, category, discount, expiry)
  unset <field>         empty a form input
  show                  print the form
  add                   store the form as a new item
  search [name]         load the first item with this exact name
  update                overwrite the loaded item with the form
  delete                remove the loaded item
  clear                 empty the form and drop the selection
  list                  print every stored item
  export [file]         write the inventory to an xlsx workbook
  help                  print this text
  quit                  leave
`

// Terminal drives a FormHandler from typed commands
type Terminal struct {
	form *FormHandler
	in   LineReader
	out  io.Writer
}

// NewTerminal creates a new command loop over in
func NewTerminal(form *FormHandler, in LineReader, out io.Writer) *Terminal {
	return &Terminal{form: form, in: in, out: out}
}

// NewCompleter returns tab completion for the terminal commands
func NewCompleter() *readline.PrefixCompleter {
	fieldItems := func() []readline.PrefixCompleterInterface {
		items := make([]readline.PrefixCompleterInterface, 0, len(domain.FieldOrder))
		for _, f := range domain.FieldOrder {
			items = append(items, readline.PcItem(string(f)))
		}
		return items
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("set", fieldItems()...),
		readline.PcItem("unset", fieldItems()...),
		readline.PcItem("show"),
		readline.PcItem(string(ActionAdd)),
		readline.PcItem(string(ActionSearch)),
		readline.PcItem(string(ActionUpdate)),
		readline.PcItem(string(ActionDelete)),
		readline.PcItem(string(ActionClear)),
		readline.PcItem(string(ActionList)),
		readline.PcItem(string(ActionExport)),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Run reads commands until quit, end of input or ctx is done
func (t *Terminal) Run(ctx context.Context) error {
	fmt.Fprint(t.out, "Pharmacy inventory. Type 'help' for commands.\n")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := t.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintln(t.out, "(use quit or Ctrl+D to exit)")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		if !t.Execute(ctx, line) {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false once the operator
// asked to leave.
func (t *Terminal) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	word, rest := splitWord(line)

	switch strings.ToLower(word) {
	case "quit", "exit", `\q`:
		return false
	case "help", "?":
		fmt.Fprint(t.out, helpText)
	case "show":
		t.form.RenderForm()
	case "set":
		t.set(rest)
	case "unset":
		name, ok := domain.ParseFieldName(rest)
		if !ok {
			t.unknownField(rest)
			return true
		}
		t.form.SetField(name, "")
	case string(ActionAdd), string(ActionUpdate), string(ActionDelete),
		string(ActionClear), string(ActionSearch):
		t.form.Handle(ctx, Action(strings.ToLower(word)), rest)
		t.form.RenderForm()
	case string(ActionList), string(ActionExport):
		t.form.Handle(ctx, Action(strings.ToLower(word)), rest)
	default:
		fmt.Fprintf(t.out, "Unknown command %q. Type 'help' for commands.\n", word)
	}

	return true
}

func (t *Terminal) set(args string) {
	field, value := splitWord(args)
	name, ok := domain.ParseFieldName(field)
	if !ok {
		t.unknownField(field)
		return
	}
	t.form.SetField(name, value)
}

func (t *Terminal) unknownField(field string) {
	names := make([]string, 0, len(domain.FieldOrder))
	for _, f := range domain.FieldOrder {
		names = append(names, string(f))
	}
	fmt.Fprintf(t.out, "Unknown field %q. Fields: %s\n", field, strings.Join(names, ", "))
}

// splitWord returns the first whitespace separated word and the trimmed
// remainder of s
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexAny(s, " \t")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx:])
}
