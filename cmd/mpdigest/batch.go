package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mpdigest"
)

// Sentinel errors for the batch command.
var (
	ErrReadInput   = errors.New("reading input")
	ErrDecodeInput = errors.New("decoding input")
	ErrInputShape  = errors.New("input must be a JSON array or object")
)

// objectInput is the rich input shape. "summary" is accepted as an older
// name for the overview.
type objectInput struct {
	Articles []mpdigest.ArticleItem `json:"articles"`
	Overview string                 `json:"overview"`
	Summary  string                 `json:"summary"`
}

// runBatch converts the input file and prints the HTML to stdout.
// Input and conversion failures print one localized line to stdout and
// still exit 0; only usage errors exit non-zero.
func runBatch(args []string, env *Environment) int {
	flags, _, err := parseBatchFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	log := newLogger(cfg, flags.common, env, "warn")

	path := cfg.Input.File
	if flags.input != "" {
		path = flags.input
	}
	log.WithField("file", path).Debug("reading input")

	conv, err := newConverter(cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	html, err := convertFile(context.Background(), conv, path, env)
	if err != nil {
		log.WithError(err).Debug("batch conversion failed")
		fmt.Fprintln(env.Stdout, batchMessage(err, path))
		return exitCodeFor(err)
	}

	fmt.Fprintln(env.Stdout, html)
	return ExitSuccess
}

// convertFile reads path, picks the layout from the JSON shape unless the
// converter has a fixed layout, and converts.
func convertFile(ctx context.Context, conv *mpdigest.Converter, path string, env *Environment) (string, error) {
	data, err := env.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	req, err := decodeInput(data)
	if err != nil {
		return "", err
	}
	if conv.Layout() != mpdigest.LayoutAuto {
		req.Layout = conv.Layout()
	}

	resp, err := conv.Convert(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.HTML, nil
}

// decodeInput accepts a JSON array of articles (simple layout) or an object
// {articles, overview|summary} (rich layout).
func decodeInput(data []byte) (*mpdigest.ConvertRequest, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []mpdigest.ArticleItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}
		return &mpdigest.ConvertRequest{Articles: items, Layout: mpdigest.LayoutSimple}, nil
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj objectInput
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
		}
		overview := obj.Overview
		if strings.TrimSpace(overview) == "" {
			overview = obj.Summary
		}
		return &mpdigest.ConvertRequest{Articles: obj.Articles, Overview: overview, Layout: mpdigest.LayoutRich}, nil
	}

	// Let the decoder report malformed input; well-formed scalars are the
	// wrong shape.
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeInput, err)
	}
	return nil, ErrInputShape
}

// batchMessage renders the one-line localized failure message.
func batchMessage(err error, path string) string {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("错误: 找不到 %s 文件", path)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("错误: JSON解析失败 - %s", syntaxErr)
	default:
		return fmt.Sprintf("错误: %s", err)
	}
}
