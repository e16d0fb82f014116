package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
)

// Output formats accepted by NewPrinter.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Printer writes service responses in one output format.
type Printer struct {
	out    io.Writer
	format string
	bold   *color.Color
}

// NewPrinter returns a printer for format. An empty format means OutputText.
func NewPrinter(out io.Writer, format string) (*Printer, error) {
	switch format {
	case "":
		format = OutputText
	case OutputText, OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q, must be one of text, json, yaml", format)
	}
	return &Printer{out: out, format: format, bold: color.New(color.Bold)}, nil
}

// PrintPlan prints a single plan.
func (p *Printer) PrintPlan(plan apiv1.Plan) error {
	return p.print(plan, func() {
		p.writePlan(plan)
	})
}

// PrintEnroll prints the plan of an enrolled word.
func (p *Printer) PrintEnroll(resp *apiv1.EnrollWordResponse) error {
	return p.print(resp, func() {
		if resp.Created {
			_, _ = fmt.Fprintf(p.out, "Enrolled word %d\n", resp.Plan.WordID)
		} else {
			_, _ = fmt.Fprintf(p.out, "Word %d is already enrolled\n", resp.Plan.WordID)
		}
		p.writePlan(resp.Plan)
	})
}

// PrintDueWords prints the due set.
func (p *Printer) PrintDueWords(resp *apiv1.ListDueWordsResponse) error {
	return p.print(resp, func() {
		if resp.Count == 0 {
			_, _ = fmt.Fprintln(p.out, "No words to review!")
			return
		}
		_, _ = fmt.Fprintf(p.out, "%d words to review\n", resp.Count)
		for _, w := range resp.Words {
			_, _ = fmt.Fprintf(p.out, "  %s (word %d): level %d, due since %s\n",
				p.bold.Sprint(w.Text), w.WordID, w.Plan.MasteryLevel, formatTime(w.Plan.NextReviewAt))
		}
	})
}

// PrintOverview prints the plan counts.
func (p *Printer) PrintOverview(resp *apiv1.GetOverviewResponse) error {
	return p.print(resp, func() {
		_, _ = fmt.Fprintf(p.out, "Total words: %d\n", resp.TotalWords)
		_, _ = fmt.Fprintf(p.out, "Mastered:    %s\n", color.GreenString("%d", resp.Mastered))
		_, _ = fmt.Fprintf(p.out, "Learning:    %d\n", resp.Learning)
		_, _ = fmt.Fprintf(p.out, "To review:   %s\n", color.YellowString("%d", resp.ToReview))
	})
}

// PrintHistory prints review outcomes, newest first.
func (p *Printer) PrintHistory(resp *apiv1.ListReviewHistoryResponse) error {
	return p.print(resp, func() {
		if len(resp.Outcomes) == 0 {
			_, _ = fmt.Fprintln(p.out, "No reviews yet")
			return
		}
		for _, o := range resp.Outcomes {
			result := color.RedString("incorrect")
			if o.IsCorrect {
				result = color.GreenString("correct")
			}
			_, _ = fmt.Fprintf(p.out, "%s  %s  %ds\n", o.ReviewedAt.UTC().Format(time.RFC3339), result, o.TimeSpent)
		}
	})
}

func (p *Printer) writePlan(plan apiv1.Plan) {
	if plan.IsMastered {
		_, _ = fmt.Fprintf(p.out, "word %d: %s, %d reviews, last reviewed %s\n",
			plan.WordID, color.GreenString("mastered"), plan.ReviewCount, formatTime(plan.LastReviewAt))
		return
	}
	_, _ = fmt.Fprintf(p.out, "word %d: level %d, %d reviews, next review %s\n",
		plan.WordID, plan.MasteryLevel, plan.ReviewCount, formatTime(plan.NextReviewAt))
}

func (p *Printer) print(v any, text func()) error {
	switch p.format {
	case OutputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(b))
		return err
	case OutputYAML:
		b, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = p.out.Write(b)
		return err
	default:
		text()
		return nil
	}
}

// toYAML encodes v with the field names and order of its JSON form.
func toYAML(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	resetStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal() > %w", err)
	}
	return out, nil
}

func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
