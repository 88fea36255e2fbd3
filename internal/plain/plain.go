// Package plain runs a quiz over a line-oriented reader and writer, for
// terminals without a TUI and for scripted use.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/studyquiz/internal/session"
)

const rule = "────────────────────────────────────────"

// Run drives engine's sessions from in, writing everything to out. It keeps
// offering restarts until the learner declines or input ends.
//
// Run returns nil at end of input and ctx.Err() if ctx is cancelled.
func Run(ctx context.Context, engine *session.Engine, in io.Reader, out io.Writer) error {
	r := newLineReader(in)
	defer r.close()

	s := engine.Current()
	if s == nil || s.IsComplete() {
		var err error
		if s, err = engine.Start(); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
	}

	p := &printer{w: out}
	p.printf("%s\n", engine.Bank().Title())
	p.printf("Test your knowledge with %d randomized questions.\n\n", s.Progress().Total)

	for {
		if err := play(ctx, r, p, s); err != nil {
			return ignoreEOF(err)
		}

		sum, err := s.Summary()
		if err != nil {
			return err
		}
		p.printSummary(sum)

		p.printf("Restart quiz? [y/N] ")
		line, err := r.next(ctx)
		if err != nil {
			p.printf("\n")
			return ignoreEOF(err)
		}
		if !isYes(line) {
			return p.err
		}

		if s, err = engine.Restart(); err != nil {
			return fmt.Errorf("restart session: %w", err)
		}
		p.printf("\n")
	}
}

// play walks s to completion.
func play(ctx context.Context, r *lineReader, p *printer, s *session.Session) error {
	for !s.IsComplete() {
		q, err := s.CurrentQuestion()
		if err != nil {
			return err
		}
		prog := s.Progress()

		p.printf("%s\n", rule)
		p.printf("Question %d / %d  |  Score: %d\n\n", prog.Number(), prog.Total, s.Score())
		p.printf("%s\n\n", q.Prompt())
		for i, opt := range q.Options {
			p.printf("  %d) %s\n", i+1, opt)
		}

		fb, err := ask(ctx, r, p, s, q)
		if err != nil {
			return err
		}

		p.printf("\n%s\n", fb.Headline())
		if fb.Explanation != "" {
			p.printf("Explanation: %s\n", fb.Explanation)
		}

		p.printf("\nPress Enter to continue...")
		if _, err := r.next(ctx); err != nil {
			p.printf("\n")
			return err
		}
		if err := s.Advance(); err != nil {
			return err
		}
	}
	return p.err
}

// ask prompts until the learner gives an acceptable answer.
func ask(ctx context.Context, r *lineReader, p *printer, s *session.Session, q session.Question) (session.Feedback, error) {
	for {
		p.printf("\nYour answer: ")
		line, err := r.next(ctx)
		if err != nil {
			p.printf("\n")
			return session.Feedback{}, err
		}

		fb, err := s.Submit(resolveChoice(q, line))
		switch {
		case err == nil:
			return fb, nil
		case errors.Is(err, session.ErrNoSelection):
			p.printf("%s\n", session.NoSelectionMessage)
		case errors.Is(err, session.ErrInvalidArgument):
			log.Printf("plain: rejected answer %q: %v", line, err)
			p.printf("Unknown choice %q. Enter 1-%d or the option text.\n", line, len(q.Options))
		default:
			return session.Feedback{}, err
		}
	}
}

// resolveChoice maps an option number to its text. Anything else is passed
// through for the session to accept or reject.
func resolveChoice(q session.Question, line string) string {
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return line
}

func isYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (p *printer) printSummary(sum session.Summary) {
	p.printf("%s\n", rule)
	p.printf("Quiz Complete!\n\n")
	p.printf("Your Score: %d / %d\n", sum.Score, sum.Total)
	p.printf("Percentage: %s\n", session.FormatPercentage(sum.Percentage))
	p.printf("Rating: %s\n", sum.Rating)
	p.printf("%s\n", sum.Rating.Message())
	p.printf("Time: %s\n\n", sum.Duration.Round(time.Second))
}

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// lineReader reads lines on its own goroutine so a blocked read never
// holds up context cancellation.
type lineReader struct {
	lines chan string
	errc  chan error
	done  chan struct{}
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{
		lines: make(chan string),
		errc:  make(chan error, 1),
		done:  make(chan struct{}),
	}
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case r.lines <- sc.Text():
			case <-r.done:
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		r.errc <- err
	}()
	return r
}

func (r *lineReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-r.lines:
		return line, nil
	case err := <-r.errc:
		r.errc <- err
		return "", err
	}
}

func (r *lineReader) close() {
	close(r.done)
}
