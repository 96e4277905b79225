package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// maxLineBytes bounds a single log line during scans.
const maxLineBytes = 1024 * 1024

const pollInterval = 250 * time.Millisecond

// Options controls one Tail call.
type Options struct {
	// Offset resumes reading at a byte position from an earlier Result.
	// Negative means start with the last Limit lines of the file.
	Offset int64
	Limit  int
	Follow bool
	// Wait bounds how long follow mode polls for new lines.
	Wait time.Duration
}

// Result carries the lines read and the offset to resume from.
type Result struct {
	Lines  []string
	Offset int64
}

// Tail reads from the log file at path. A missing file is not an error; the
// result is empty with a zero offset so callers can poll until the file
// appears.
func Tail(ctx context.Context, path string, opts Options) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("log path %q is a directory", path)
	}

	var result Result
	if opts.Offset < 0 {
		result, err = lastLines(path, opts.Limit)
	} else {
		offset := opts.Offset
		if offset > info.Size() {
			// The file was rotated or truncated underneath us.
			offset = info.Size()
		}
		result, err = linesFrom(path, offset)
	}
	if err != nil {
		return result, err
	}

	if opts.Follow && opts.Wait > 0 && len(result.Lines) == 0 {
		return poll(ctx, path, result.Offset, opts.Wait)
	}
	return result, nil
}

// lastLines returns up to limit trailing lines using a ring buffer, plus the
// end-of-file offset.
func lastLines(path string, limit int) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if limit <= 0 {
		end, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			return Result{}, fmt.Errorf("seek log file: %w", err)
		}
		return Result{Offset: end}, nil
	}

	ring := make([]string, limit)
	count := 0
	next := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read log file: %w", err)
	}

	end, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}

	lines := make([]string, count)
	for i := 0; i < count; i++ {
		if count == limit {
			lines[i] = ring[(next+i)%limit]
		} else {
			lines[i] = ring[i]
		}
	}
	return Result{Lines: lines, Offset: end}, nil
}

// linesFrom reads every line at or after offset.
func linesFrom(path string, offset int64) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read log file: %w", err)
	}

	end, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return Result{}, fmt.Errorf("seek log file: %w", err)
	}
	return Result{Lines: lines, Offset: end}, nil
}

// poll re-reads from offset until new lines appear, the wait elapses, or the
// context is canceled.
func poll(ctx context.Context, path string, offset int64, wait time.Duration) (Result, error) {
	deadline := time.Now().Add(wait)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		result, err := linesFrom(path, offset)
		if err != nil {
			return result, err
		}
		if len(result.Lines) > 0 || time.Now().After(deadline) {
			return result, nil
		}
		offset = result.Offset

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-ticker.C:
		}
	}
}
