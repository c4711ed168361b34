// Package observability provides formatted console output for generation
// progress and the final poem.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/verse-generator/internal/phonetics"
	"github.com/jonathan/verse-generator/internal/poem"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted output for generation runs.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a Printer writing to out. Verbose mode additionally
// prints per-attempt progress events.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// HandleEvent prints a progress event. Attempt headers and line results are
// always shown; fine-grained sampling progress only in verbose mode.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) HandleEvent(event poem.ProgressEvent) {
	switch event.Stage {
	case "attempt":
		fmt.Fprintf(p.out, "\n%s\n", event.Message)
	case "progress":
		if p.verbose {
			fmt.Fprintf(p.out, "  %s\n", event.Message)
		}
	default:
		fmt.Fprintf(p.out, "%s\n", event.Message)
	}
}

// PrintPoem outputs the final poem with its scheme, rhyme-type summary and
// numbered lines; unresolved slots render as placeholders.
func (p *Printer) PrintPoem(result *poem.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Схема рифмовки: %s\n", result.SchemeName))
	if result.Stress != nil {
		sb.WriteString(fmt.Sprintf("Тип рифмы: %s (ударение на '%s' в позиции %d слова '%s')\n",
			result.Stress.RhymeType(), string(result.Stress.Vowel), result.Stress.Position+1, result.Stress.Word))
		sb.WriteString(fmt.Sprintf("Количество слогов в первой строке: %d\n", result.Syllables))
	}
	sb.WriteString("\n")

	for i, line := range result.Lines {
		if line == "" {
			line = poem.Placeholder
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}

	p.printBox("ФИНАЛЬНОЕ ВЕСЕННЕЕ СТИХОТВОРЕНИЕ", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a phonetic report for a single line.
func (p *Printer) PrintAnalysis(line string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Строка: %s\n", line))
	sb.WriteString(fmt.Sprintf("Слоги в последнем слове: %d\n", phonetics.CountSyllablesInLastWord(line)))

	if vowel, ok := phonetics.RhymeVowel(line); ok {
		sb.WriteString(fmt.Sprintf("Гласная рифмы: %s (группа: %s)\n", string(vowel), phonetics.GroupDisplay(vowel)))
	} else {
		sb.WriteString("Гласная рифмы: не найдена\n")
	}

	if stress := phonetics.StressPattern(line); stress != nil {
		sb.WriteString(fmt.Sprintf("Ударение: '%s' в позиции %d слова '%s'\n",
			string(stress.Vowel), stress.Position+1, stress.Word))
		sb.WriteString(fmt.Sprintf("Тип рифмы: %s", stress.RhymeType()))
	} else {
		sb.WriteString("Ударение: не определено")
	}

	p.printBox("ФОНЕТИЧЕСКИЙ АНАЛИЗ", sb.String())
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads by rune count; %-*s pads by bytes, which misaligns
// Cyrillic text.
func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
