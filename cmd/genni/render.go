package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"genni"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderSolutions prints the solution list, one numbered pair per line.
func renderSolutions(w io.Writer, sols []genni.Solution) {
	if len(sols) == 0 {
		fmt.Fprintln(w, missStyle.Render("--- No solution found. ---"))
		return
	}
	rule := ruleStyle.Render("-----------------")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- %d SOLUTION(S) FOUND! ---", len(sols))))
	for i, s := range sols {
		fmt.Fprintf(w, "%3d: x = %d, y = %d\n", i+1, s.X, s.Y)
	}
	fmt.Fprintln(w, rule)
}

// startProgress redraws a bar on w every interval until the returned stop
// function is called or ctx ends. It only reads the counters.
func startProgress(ctx context.Context, w io.Writer, read func() (int64, int64), interval time.Duration) (stop func()) {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	start := time.Now()

	draw := func() {
		done, total := read()
		pct := 0.0
		if total > 0 {
			pct = float64(done) / float64(total)
		}
		fmt.Fprintf(w, "\r%s %7d/%-7d [%s]", bar.ViewAs(pct), done, total,
			time.Since(start).Truncate(time.Second))
	}

	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				draw()
			case <-ctx.Done():
				return
			case <-quit:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			wg.Wait()
			draw()
			fmt.Fprintln(w)
		})
	}
}
