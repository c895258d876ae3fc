// Package datafile lee datasets de curvas de envejecimiento desde JSON o YAML
// y valida su forma antes de entregarlos al dominio.
package datafile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"pet-human-age/internal/domain/agingcurves"
	"pet-human-age/internal/platform/httpclient"
	"pet-human-age/internal/platform/validate"

	"go.yaml.in/yaml/v3"
)

var (
	ErrInvalidDataset    = errors.New("invalid dataset")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// recordDoc es la forma en disco de un AgingRecord (keys camelCase del dataset original).
// Punteros para distinguir "faltante" de cero.
type recordDoc struct {
	Species         string   `json:"species" yaml:"species" validate:"notblank"`
	Breed           string   `json:"breed" yaml:"breed" validate:"notblank"`
	FirstPhaseYears *float64 `json:"firstPhaseYears" yaml:"firstPhaseYears" validate:"required,gt=0"`
	FirstPhaseValue *float64 `json:"firstPhaseValue" yaml:"firstPhaseValue" validate:"required,gt=0"`
	LaterPerYear    *float64 `json:"laterPerYear" yaml:"laterPerYear" validate:"required,gt=0"`
}

// wrapperDoc permite {"curves": [...]} además del array pelado.
type wrapperDoc struct {
	Curves []recordDoc `json:"curves" yaml:"curves"`
}

// Parse decodifica y valida un dataset. El orden de las filas se preserva.
func Parse(data []byte, format Format) (agingcurves.Dataset, error) {
	var (
		docs []recordDoc
		err  error
	)

	switch format {
	case FormatJSON:
		docs, err = decodeJSON(data)
	case FormatYAML:
		docs, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	out := make(agingcurves.Dataset, 0, len(docs))
	for i, d := range docs {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidDataset, i, err)
		}
		out = append(out, agingcurves.AgingRecord{
			Species:         d.Species,
			Breed:           d.Breed,
			FirstPhaseYears: *d.FirstPhaseYears,
			FirstPhaseValue: *d.FirstPhaseValue,
			LaterPerYear:    *d.LaterPerYear,
		})
	}
	return out, nil
}

func decodeJSON(data []byte) ([]recordDoc, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	if trimmed[0] == '{' {
		var w wrapperDoc
		if err := json.Unmarshal(trimmed, &w); err != nil {
			return nil, err
		}
		return w.Curves, nil
	}

	var docs []recordDoc
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func decodeYAML(data []byte) ([]recordDoc, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty document")
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var docs []recordDoc
		if err := doc.Decode(&docs); err != nil {
			return nil, err
		}
		return docs, nil
	case yaml.MappingNode:
		var w wrapperDoc
		if err := doc.Decode(&w); err != nil {
			return nil, err
		}
		return w.Curves, nil
	default:
		return nil, errors.New("expected a list of curves or a 'curves' mapping")
	}
}

// FormatFromPath deduce el formato por extensión (.json, .yaml, .yml).
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
	}
}

// LoadFile lee y parsea un dataset local.
func LoadFile(p string) (agingcurves.Dataset, error) {
	format, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data, format)
}

// LoadURL descarga un dataset remoto. El formato sale de la extensión del path
// o, si no hay, del Content-Type (default JSON).
func LoadURL(ctx context.Context, client *httpclient.Client, rawURL string) (agingcurves.Dataset, error) {
	if client == nil {
		client = httpclient.New(0)
	}

	doc, err := client.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}

	format := FormatJSON
	if u, err := url.Parse(rawURL); err == nil {
		if f, err := FormatFromPath(u.Path); err == nil {
			format = f
		} else if strings.Contains(strings.ToLower(doc.ContentType), "yaml") {
			format = FormatYAML
		}
	}

	return Parse(doc.Body, format)
}

// IsURL indica si source apunta a http(s).
func IsURL(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
