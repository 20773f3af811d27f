// Package batch converts directories of annotation docs into FoLiA files.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/revelaction/segfolia/folia"
	"github.com/revelaction/segfolia/logger"
	"github.com/revelaction/segfolia/render"
	"github.com/revelaction/segfolia/storage/filesystem"
)

const DefaultExtension = ".xml"

var (
	ErrSameFile = errors.New("output file is the input file")
	ErrExists   = errors.New("output file already exists")
)

type Options struct {
	// Root of the input files. Subdirectories below it are mirrored under
	// OutputDir.
	InputDir  string
	OutputDir string

	// Appended to the output file name unless already present
	Extension string

	// Strip the input extension before appending Extension
	ReplaceExtension bool

	// Skip inputs whose output file exists
	NoClobber bool

	// Count and log conversion failures instead of aborting
	ContinueOnError bool

	// Base names of input files to skip
	Exclude []string

	Threads int
}

func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		Extension: DefaultExtension,
		Threads:   1,
	}
}

type Status int

const (
	Converted Status = iota
	Skipped
	Failed
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Result is the outcome of one input file. Err holds the skip reason for
// skipped files.
type Result struct {
	Input  string
	Output string
	Status Status
	Err    error
}

type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d processed, %d skipped, %d failed", s.Processed, s.Skipped, s.Failed)
}

type Converter struct {
	opts     Options
	folia    folia.Options
	exclude  map[string]struct{}
	progress func(Result)
}

func NewConverter(opts Options, fopts folia.Options) *Converter {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}

	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}

	return &Converter{opts: opts, folia: fopts, exclude: exclude}
}

// OnProgress registers fn to be called after each finished file. Calls are
// made from the goroutine running Run, never concurrently.
func (c *Converter) OnProgress(fn func(Result)) {
	c.progress = fn
}

// OutputPath returns the absolute path of the FoLiA file of input file in.
func (c *Converter) OutputPath(in string) (string, error) {
	outDir := c.opts.OutputDir
	if c.opts.InputDir != "" {
		rel, err := filepath.Rel(c.opts.InputDir, filepath.Dir(in))
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			outDir = filepath.Join(outDir, rel)
		}
	}

	name := filepath.Base(in)
	if c.opts.ReplaceExtension {
		// ".hidden" has no extension to strip
		if ext := filepath.Ext(name); ext != "" && ext != name {
			name = strings.TrimSuffix(name, ext)
		}
	}
	if !strings.HasSuffix(name, c.opts.Extension) {
		name += c.opts.Extension
	}

	return filepath.Abs(filepath.Join(outDir, name))
}

// ConvertFile converts one annotation doc file. The output file is written
// only if the whole document serializes.
func (c *Converter) ConvertFile(in string) Result {
	res := Result{Input: in}

	if _, ok := c.exclude[filepath.Base(in)]; ok {
		logger.Warn("Skipping excluded file %s", filepath.Base(in))
		res.Status = Skipped
		return res
	}

	out, err := c.OutputPath(in)
	if err != nil {
		return failed(res, err)
	}
	res.Output = out

	if abs, err := filepath.Abs(in); err == nil && abs == out {
		logger.Warn("Skipping %s: output file %s has the same name as the input file", filepath.Base(in), out)
		res.Status = Skipped
		res.Err = ErrSameFile
		return res
	}

	if c.opts.NoClobber {
		if _, err := os.Stat(out); err == nil {
			logger.Warn("Skipping %s: output file %s already exists", filepath.Base(in), out)
			res.Status = Skipped
			res.Err = ErrExists
			return res
		}
	}

	logger.Info("Processing file %s ... writing to %s", in, out)

	doc, err := filesystem.ReadDoc(in)
	if err != nil {
		return failed(res, err)
	}

	var buf bytes.Buffer
	if err := render.NewXMLRenderer(&buf, c.folia).Convert(doc, c.folia); err != nil {
		return failed(res, err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return failed(res, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return failed(res, err)
	}

	res.Status = Converted
	return res
}

func failed(res Result, err error) Result {
	res.Status = Failed
	res.Err = err
	return res
}

// Run converts files with Threads workers. Unless ContinueOnError, the first
// failure stops the run and is returned. Cancelling ctx stops handing out
// files; the files already handed out finish.
func (c *Converter) Run(ctx context.Context, files []string) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	threads := c.opts.Threads
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan string)
	results := make(chan Result)

	go func() {
		defer close(jobs)
		for _, f := range files {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for in := range jobs {
				results <- c.ConvertFile(in)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var sum Summary
	var runErr error
	for res := range results {
		switch res.Status {
		case Converted:
			sum.Processed++
		case Skipped:
			sum.Skipped++
		case Failed:
			sum.Failed++
			logger.WithField("file", res.Input).Errorf("conversion failed: %v", res.Err)
			if !c.opts.ContinueOnError && runErr == nil {
				runErr = fmt.Errorf("%s: %w", res.Input, res.Err)
				cancel()
			}
		}

		if c.progress != nil {
			c.progress(res)
		}
	}

	if runErr != nil {
		return sum, runErr
	}

	// Every file finished, a cancel arriving after the last one is ignored.
	if sum.Processed+sum.Skipped+sum.Failed == len(files) {
		return sum, nil
	}

	// Only the parent context can be done here.
	return sum, ctx.Err()
}

// Files returns the .json files below dir, in lexical order.
func Files(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ReadExcludeFile reads the file names to exclude, one per line. Blank lines
// are ignored.
func ReadExcludeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
