// Package intake collects a flight batch from a console session.
package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/me/flightsched/pkg/model"
)

// ErrAborted is returned when input ends before the batch is complete.
var ErrAborted = errors.New("input ended before all flights were entered")

// Collector prompts for flights line by line, re-asking until each answer
// is valid. Invalid data never leaves the collector.
type Collector struct {
	in      *bufio.Scanner
	out     io.Writer
	prompts bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithPrompts forces prompts on or off. By default prompts are shown only
// when the input is a terminal.
func WithPrompts(on bool) Option {
	return func(c *Collector) {
		c.prompts = on
	}
}

// NewCollector reads answers from r and writes prompts and corrections to w.
func NewCollector(r io.Reader, w io.Writer, opts ...Option) *Collector {
	c := &Collector{
		in:      bufio.NewScanner(r),
		out:     w,
		prompts: isTerminal(r),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Collect runs the whole session: a flight count, then origin, destination,
// arrival and duration for each flight. Flights are numbered F1..Fn.
func (c *Collector) Collect() ([]model.Flight, error) {
	n, err := c.count()
	if err != nil {
		return nil, err
	}

	// n is user-controlled; the slice grows as answers actually arrive.
	var flights []model.Flight
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("F%d", i+1)
		c.prompt("\nEnter details for %s:\n", id)

		origin, err := c.ask("  Departing from: ")
		if err != nil {
			return nil, err
		}
		dest, err := c.ask("  Destination: ")
		if err != nil {
			return nil, err
		}
		arrival, err := c.askUntil("  Arrival time (HH:MM): ", "Invalid time. Use HH:MM (00:00-23:59)", model.ParseClock)
		if err != nil {
			return nil, err
		}
		duration, err := c.askUntil("  Flight duration (HH:MM): ", "Invalid duration. Use HH:MM with positive duration", model.ParseDuration)
		if err != nil {
			return nil, err
		}

		flights = append(flights, model.Flight{
			ID:              id,
			Origin:          origin,
			Destination:     dest,
			ArrivalMinutes:  arrival,
			DurationMinutes: duration,
		})
	}
	return flights, nil
}

func (c *Collector) count() (int, error) {
	for {
		line, err := c.ask("Enter number of flights to schedule: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(c.out, "Invalid input. Please enter a number")
		case n <= 0:
			fmt.Fprintln(c.out, "Please enter a positive number")
		default:
			return n, nil
		}
	}
}

// askUntil repeats question until parse accepts the answer.
func (c *Collector) askUntil(question, complaint string, parse func(string) (int, error)) (int, error) {
	for {
		line, err := c.ask(question)
		if err != nil {
			return 0, err
		}
		if v, err := parse(line); err == nil {
			return v, nil
		}
		fmt.Fprintln(c.out, complaint)
	}
}

// ask prints question (when prompting) and returns the next trimmed line.
func (c *Collector) ask(question string) (string, error) {
	c.prompt("%s", question)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrAborted
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Collector) prompt(format string, args ...any) {
	if c.prompts {
		fmt.Fprintf(c.out, format, args...)
	}
}
