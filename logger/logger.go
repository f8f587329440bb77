// Package logger builds the zerolog loggers used by hosts of the editing
// core. The core itself takes a zerolog.Logger and defaults to a no-op.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Builder accumulates logger configuration.
type Builder struct {
	writer io.Writer
	path   string
	level  zerolog.Level
}

// Log is a built logger plus the file it writes to, if any.
type Log struct {
	Logger  zerolog.Logger
	LogFile *os.File
}

// New creates a Builder writing to stderr at the info level.
func New() *Builder {
	return &Builder{writer: os.Stderr, level: zerolog.InfoLevel}
}

// FromPath directs output to the file at path, appending and creating as needed.
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

// FromBuffer directs output to w.
func (b *Builder) FromBuffer(w io.Writer) *Builder {
	b.writer = w
	return b
}

// Level sets the minimum level the built logger emits.
func (b *Builder) Level(level zerolog.Level) *Builder {
	b.level = level
	return b
}

// Make builds the logger.
func (b *Builder) Make() (*Log, error) {
	log := &Log{}
	writer := b.writer
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		log.LogFile = f
		writer = zerolog.SyncWriter(f)
	}
	log.Logger = zerolog.New(writer).Level(b.level).With().Timestamp().Logger()
	return log, nil
}

// Close closes the log file, if one was opened.
func (l *Log) Close() error {
	if l.LogFile != nil {
		return l.LogFile.Close()
	}
	return nil
}
