package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/placeskit/places-setup/internal/pkg/printer"
	"github.com/placeskit/places-setup/internal/pkg/tea/style"
)

var (
	ErrInputCanceled = eris.New("input canceled")
	ErrNoOptions     = eris.New("no options to select from")
)

// NewService creates a new input service with standard stdin/stdout.
func NewService() *Service {
	return &Service{}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) *Service {
	return &Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if prompt != "" {
		s.printf("%s%s", style.QuestionIcon.Render(), prompt)
	}
	if defaultValue != "" {
		s.printf(" [%s]: ", defaultValue)
	} else {
		s.printf(": ")
	}

	line, err := s.readLine()
	if err != nil {
		return "", eris.Wrap(err, "failed to read input")
	}

	line = strings.TrimSpace(line)
	if line == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks for y/n confirmation and re-asks until the answer is understood.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	for {
		answer, err := s.Prompt(ctx, prompt+" (y/n)", defaultValue)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			s.println("Invalid input. Please enter 'y' or 'n'")
		}
	}
}

// Select allows user to select from multiple options by number and returns the 0-based index.
func (s *Service) Select(ctx context.Context, title, prompt string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}

	for {
		s.println("")
		if title != "" {
			s.println(" " + title)
		}
		for i, option := range options {
			s.printf("  %d. %s\n", i+1, option)
		}

		defaultStr := ""
		if defaultIndex >= 0 && defaultIndex < len(options) {
			defaultStr = strconv.Itoa(defaultIndex + 1)
		}

		answer, err := s.Prompt(ctx, prompt, defaultStr)
		if err != nil {
			return -1, err
		}

		if answer == "q" || answer == "quit" {
			return -1, ErrInputCanceled
		}

		num, err := strconv.Atoi(answer)
		if err != nil || num < 1 || num > len(options) {
			s.printf("Please enter a number between 1 and %d\n", len(options))
			continue
		}

		return num - 1, nil
	}
}

func (s *Service) readLine() (string, error) {
	if s.reader == nil {
		in := s.Input
		if in == nil {
			in = os.Stdin
		}
		s.reader = bufio.NewReader(in)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	if s.Output == nil {
		printer.Infof(format, args...)
		return
	}
	fmt.Fprintf(s.Output, format, args...)
}

func (s *Service) println(text string) {
	if s.Output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(s.Output, text)
}
