package main

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Logger
	Getenv func(string) string
	// Environ lists KEY=value pairs, used to warn about unknown MD2SITE_* names.
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  newLogger(os.Stderr),
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// newLogger builds the CLI logger: text lines on w, no timestamps, warn level
// until the persistent flags say otherwise.
func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}
