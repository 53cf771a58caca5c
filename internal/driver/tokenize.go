package driver

import (
	"context"
	"io"

	"textanalyzer/internal/diag"
	"textanalyzer/internal/scanner"
	"textanalyzer/internal/token"
)

// TokenizeResult holds the token stream of one input.
type TokenizeResult struct {
	Path   string
	Tokens []token.Token // включая завершающий EOF
	Bag    *diag.Bag
}

// TokenizeFile scans the file at path into a token slice.
func TokenizeFile(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	f, _, err := OpenInput(path, opts.MaxFileSize)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Tokenize(ctx, f, path, opts)
}

// Tokenize collects all tokens of r. Skippable scanner errors never abort:
// the Invalid token stays in the stream and the error goes to the Bag.
func Tokenize(ctx context.Context, r io.Reader, path string, opts Options) (*TokenizeResult, error) {
	bag := diag.NewBag(opts.maxDiagnostics())
	sopts := opts.Scanner
	sopts.Reporter = diag.PathReporter{Bag: bag, Path: path}
	sc := scanner.New(r, sopts)

	var tokens []token.Token
	for n := 0; ; n++ {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		tok, err := sc.NextToken()
		if err != nil {
			d, ok := scanner.Diagnostic(err)
			if !ok {
				return nil, err
			}
			bag.Add(d.WithPath(path))
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		Path:   path,
		Tokens: tokens,
		Bag:    bag,
	}, nil
}
