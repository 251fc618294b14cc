package server

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/alnah/go-mpdigest"
)

// fieldError is one entry of a 422 response, shaped like the FastAPI
// validation errors existing clients already parse.
type fieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type validationErrors []fieldError

func (v *validationErrors) add(msg, typ string, loc ...any) {
	*v = append(*v, fieldError{Loc: append([]any{"body"}, loc...), Msg: msg, Type: typ})
}

// requiredArticleFields must be present and be strings in every article.
var requiredArticleFields = []string{"title", "summary", "url"}

// decodeRequest validates a JSON body field by field and builds the request.
// encoding/json alone cannot tell a missing field from an empty one, so the
// body is walked as raw messages first.
func decodeRequest(body []byte) (*mpdigest.ConvertRequest, validationErrors) {
	var errs validationErrors

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			errs.add("Input should be a valid dictionary or object to extract fields from", "model_attributes_type")
			return nil, errs
		}
		errs.add("JSON decode error", "json_invalid")
		return nil, errs
	}
	if top == nil {
		errs.add("Input should be a valid dictionary or object to extract fields from", "model_attributes_type")
		return nil, errs
	}

	req := &mpdigest.ConvertRequest{}

	raw, ok := top["articles"]
	var items []json.RawMessage
	switch {
	case !ok:
		errs.add("Field required", "missing", "articles")
	case json.Unmarshal(raw, &items) != nil || isNull(raw):
		errs.add("Input should be a valid list", "list_type", "articles")
	default:
		req.Articles = make([]mpdigest.ArticleItem, 0, len(items))
		for i, item := range items {
			if a, ok := decodeArticle(item, i, &errs); ok {
				req.Articles = append(req.Articles, a)
			}
		}
	}

	if s, ok := optionalString(top, "overview", &errs); ok {
		req.Overview = s
	}
	if s, ok := optionalString(top, "layout", &errs); ok {
		layout, err := mpdigest.ParseLayout(s)
		if err != nil {
			errs.add("Input should be 'auto', 'simple' or 'rich'", "enum", "layout")
		}
		req.Layout = layout
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

func decodeArticle(raw json.RawMessage, i int, errs *validationErrors) (mpdigest.ArticleItem, bool) {
	var fields map[string]json.RawMessage
	if json.Unmarshal(raw, &fields) != nil || fields == nil {
		errs.add("Input should be a valid dictionary or object to extract fields from", "model_attributes_type", "articles", i)
		return mpdigest.ArticleItem{}, false
	}

	values := make(map[string]string, len(requiredArticleFields))
	valid := true
	for _, name := range requiredArticleFields {
		v, ok := fields[name]
		if !ok {
			errs.add("Field required", "missing", "articles", i, name)
			valid = false
			continue
		}
		s, ok := asString(v)
		if !ok {
			errs.add("Input should be a valid string", "string_type", "articles", i, name)
			valid = false
			continue
		}
		values[name] = s
	}

	var category string
	if v, ok := fields["category"]; ok && !isNull(v) {
		s, ok := asString(v)
		if !ok {
			errs.add("Input should be a valid string", "string_type", "articles", i, "category")
			valid = false
		}
		category = s
	}

	return mpdigest.ArticleItem{
		Title:    values["title"],
		Summary:  values["summary"],
		URL:      values["url"],
		Category: category,
	}, valid
}

// optionalString reads an optional string field; null counts as absent.
func optionalString(obj map[string]json.RawMessage, name string, errs *validationErrors) (string, bool) {
	v, ok := obj[name]
	if !ok || isNull(v) {
		return "", false
	}
	s, ok := asString(v)
	if !ok {
		errs.add("Input should be a valid string", "string_type", name)
		return "", false
	}
	return s, true
}

func asString(raw json.RawMessage) (string, bool) {
	if isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
