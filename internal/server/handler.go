package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-mpdigest"
)

// ConvertPath is the route of the conversion endpoint.
const ConvertPath = "/convert"

// MaxBodySize caps accepted request bodies.
const MaxBodySize = 8 << 20

// Converter renders a digest request.
type Converter interface {
	Convert(ctx context.Context, req *mpdigest.ConvertRequest) (*mpdigest.ConvertResponse, error)
}

// ConvertHandler serves POST /convert.
type ConvertHandler struct {
	conv Converter
	log  *logrus.Logger
}

// NewConvertHandler creates a handler.
func NewConvertHandler(conv Converter, log *logrus.Logger) *ConvertHandler {
	return &ConvertHandler{conv: conv, log: log}
}

type detailResponse struct {
	Detail any `json:"detail"`
}

// handle adapts fn to a kratos route: it writes fn's JSON result and logs
// one line per request.
func (h *ConvertHandler) handle(fn func(http.Context, logrus.Fields) (int, any)) http.HandlerFunc {
	return func(ctx http.Context) error {
		start := time.Now()
		r := ctx.Request()
		fields := logrus.Fields{"method": r.Method, "path": r.URL.Path}

		status, body := fn(ctx, fields)
		writeJSON(ctx.Response(), status, body)

		fields["status"] = status
		fields["duration"] = time.Since(start).Round(time.Microsecond).String()
		entry := h.log.WithFields(fields)
		if status >= nethttp.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request served")
		}
		return nil
	}
}

// Convert decodes the request, converts it through the server middleware
// and answers {"html": ...}. Validation failures are 422, conversion
// failures and recovered panics are 500.
func (h *ConvertHandler) Convert(ctx http.Context, fields logrus.Fields) (int, any) {
	body, err := io.ReadAll(nethttp.MaxBytesReader(ctx.Response(), ctx.Request().Body, MaxBodySize))
	if err != nil {
		var tooLarge *nethttp.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nethttp.StatusRequestEntityTooLarge, detailResponse{Detail: "Request body too large"}
		}
		return nethttp.StatusBadRequest, detailResponse{Detail: "Could not read request body"}
	}

	req, verrs := decodeRequest(body)
	if verrs != nil {
		fields["invalid_fields"] = len(verrs)
		return nethttp.StatusUnprocessableEntity, detailResponse{Detail: verrs}
	}
	fields["articles"] = len(req.Articles)

	next := ctx.Middleware(func(c context.Context, in any) (any, error) {
		return h.conv.Convert(c, in.(*mpdigest.ConvertRequest))
	})
	out, err := next(ctx, req)
	if err != nil {
		fields["error"] = err.Error()
		return nethttp.StatusInternalServerError, detailResponse{Detail: generationFailed(err)}
	}
	return nethttp.StatusOK, out
}

// MethodNotAllowed answers every non-POST method on the conversion route.
func (h *ConvertHandler) MethodNotAllowed(ctx http.Context, _ logrus.Fields) (int, any) {
	ctx.Response().Header().Set("Allow", nethttp.MethodPost)
	return nethttp.StatusMethodNotAllowed, detailResponse{Detail: "Method Not Allowed"}
}

// recoverPanic turns a panic caught by the recovery middleware into a
// generation failure.
func recoverPanic(_ context.Context, _, p any) error {
	return fmt.Errorf("%w: %v", mpdigest.ErrHTMLGeneration, p)
}

// generationFailed formats the 500 detail without repeating the prefix.
func generationFailed(err error) string {
	if errors.Is(err, mpdigest.ErrHTMLGeneration) {
		return err.Error()
	}
	return fmt.Sprintf("%v: %v", mpdigest.ErrHTMLGeneration, err)
}

// writeJSON writes v without escaping HTML, so fragments stay readable.
func writeJSON(w nethttp.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		status = nethttp.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"detail":"response encoding failed"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
