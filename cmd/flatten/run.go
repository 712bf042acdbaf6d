package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"deepflat/internal/document"
	"deepflat/sliceutil"
)

type options struct {
	depth  float64
	deep   bool
	format string
	input  string
	output string
	jobs   int
}

// flattenDepth resolves the depth flags into a FlattenDepth argument.
func (o options) flattenDepth() int {
	if o.deep {
		return sliceutil.Unbounded
	}
	return sliceutil.DepthOf(o.depth)
}

// source is one input stream, read by a worker.
type source struct {
	name   string
	format document.Format
	open   func() (io.ReadCloser, error)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.output == "" {
		return execute(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
	}

	// Render fully before touching the output file so a failed run leaves
	// nothing behind.
	var buf bytes.Buffer
	if err := execute(ctx, cmd.InOrStdin(), &buf, args, opts); err != nil {
		return err
	}
	if err := writeOutput(opts.output, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("Results written", zap.String("path", opts.output))
	return nil
}

func writeOutput(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// execute flattens every document of every input and writes the results to
// out in argument order.
func execute(ctx context.Context, stdin io.Reader, out io.Writer, args []string, o options) error {
	sources, err := resolveSources(stdin, args, o.input)
	if err != nil {
		return err
	}

	outFormat := sources[0].format
	if o.format != "" {
		if outFormat, err = document.ParseFormat(o.format); err != nil {
			return err
		}
	}

	depth := o.flattenDepth()
	logger.Debug("Flattening inputs",
		zap.Int("sources", len(sources)),
		zap.Int("depth", depth),
		zap.String("output_format", string(outFormat)),
	)

	results, err := flattenSources(ctx, sources, depth, o.jobs)
	if err != nil {
		return err
	}
	return document.Encode(out, sliceutil.Flat(results), outFormat)
}

func resolveSources(stdin io.Reader, args []string, inputFormat string) ([]source, error) {
	var override document.Format
	if inputFormat != "" {
		f, err := document.ParseFormat(inputFormat)
		if err != nil {
			return nil, err
		}
		override = f
	}

	if len(args) == 0 {
		format := document.JSON
		if override != "" {
			format = override
		}
		return []source{{
			name:   "<stdin>",
			format: format,
			open:   func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil },
		}}, nil
	}

	sources := make([]source, len(args))
	for i, path := range args {
		format := document.FormatFromPath(path)
		if override != "" {
			format = override
		}
		sources[i] = source{
			name:   path,
			format: format,
			open:   func() (io.ReadCloser, error) { return os.Open(path) },
		}
	}
	return sources, nil
}

// flattenSources processes sources concurrently, at most jobs at a time.
// results[i] holds the flattened documents of sources[i].
func flattenSources(ctx context.Context, sources []source, depth, jobs int) ([][]any, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([][]any, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs, err := readSource(src)
			if err != nil {
				return err
			}
			flat := make([]any, len(docs))
			for j, doc := range docs {
				if !sliceutil.IsArrayLike(doc) {
					logger.Warn("Document is not array-like, emitting an empty result",
						zap.String("source", src.name),
						zap.Int("document", j),
					)
				}
				flat[j] = sliceutil.FlattenDepth(doc, depth)
			}
			logger.Debug("Flattened source",
				zap.String("source", src.name),
				zap.Int("documents", len(docs)),
			)
			results[i] = flat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readSource(src source) ([]any, error) {
	r, err := src.open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.name, err)
	}
	defer r.Close()

	docs, err := document.Decode(r, src.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.name, err)
	}
	return docs, nil
}
