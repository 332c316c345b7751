package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/getlicense/internal/ui/output"
	"go.trai.ch/getlicense/internal/ui/style"
)

// Progress is a progrock.Writer that prints one line per finished vertex.
// Cache hits are counted but not printed.
type Progress struct {
	mu     sync.Mutex
	out    *termenv.Output
	done   map[string]bool
	cached int
	total  int
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{
		out:  output.New(w),
		done: make(map[string]bool),
	}
}

// WriteStatus renders the vertices of a status update.
func (p *Progress) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			// A restarted vertex is rendered again when it finishes.
			delete(p.done, v.Id)
			continue
		}
		if p.done[v.Id] {
			continue
		}
		p.done[v.Id] = true
		p.total++

		if v.Cached {
			p.cached++
			continue
		}
		if err := p.render(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Progress) render(v *progrock.Vertex) error {
	var line string
	var color termenv.Color

	switch {
	case v.Error != nil:
		line = fmt.Sprintf("%s %s: %s", style.Cross, v.Name, *v.Error)
		color = termenv.RGBColor(string(style.Red))
	case v.Canceled:
		line = fmt.Sprintf("%s %s canceled", style.Warning, v.Name)
		color = termenv.RGBColor(string(style.Yellow))
	default:
		line = fmt.Sprintf("%s %s", style.Check, v.Name)
		color = termenv.RGBColor(string(style.Green))
	}

	_, err := fmt.Fprintf(p.out, "[%d] %s\n", p.total, p.out.String(line).Foreground(color))
	return err
}

// Counts reports how many vertices finished and how many of them were cache hits.
func (p *Progress) Counts() (total, cached int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total, p.cached
}

// Close implements progrock.Writer.
func (p *Progress) Close() error {
	return nil
}
