// README: Model artifact decoding; the artifact format is JSON with a kind discriminator.
package predictor

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

const (
	KindLinear       = "linear"
	KindTreeEnsemble = "tree_ensemble"
	KindRemote       = "remote"
)

// Artifact is the serialized model envelope. Features must list the
// training columns in order.
type Artifact struct {
	Name     string   `json:"name"`
	Version  int      `json:"version"`
	Kind     string   `json:"kind"`
	Features []string `json:"features"`

	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`

	BaseScore float64 `json:"base_score,omitempty"`
	Aggregate string  `json:"aggregate,omitempty"`
	Trees     []Tree  `json:"trees,omitempty"`

	Endpoint string `json:"endpoint,omitempty"`
}

type Option func(*loadOptions)

type loadOptions struct {
	httpClient *http.Client
}

// WithHTTPClient sets the client used by remote artifacts.
func WithHTTPClient(c *http.Client) Option {
	return func(o *loadOptions) { o.httpClient = c }
}

// LoadFile reads and decodes an artifact from disk.
func LoadFile(path string, columns []string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	m, err := Decode(data, columns, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", path, err)
	}
	return m, nil
}

// Decode builds a predictor from a serialized artifact. It refuses
// artifacts whose feature list differs from columns.
func Decode(data []byte, columns []string, opts ...Option) (*Model, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing artifact: %w", err)
	}
	if err := checkFeatures(a.Features, columns); err != nil {
		return nil, err
	}

	var p Predictor
	switch a.Kind {
	case KindLinear:
		if len(a.Coefficients) != len(columns) {
			return nil, fmt.Errorf("linear artifact has %d coefficients, want %d", len(a.Coefficients), len(columns))
		}
		p = &Linear{Intercept: a.Intercept, Coefficients: a.Coefficients}
	case KindTreeEnsemble:
		agg := a.Aggregate
		if agg == "" {
			agg = AggregateSum
		}
		e := &Ensemble{BaseScore: a.BaseScore, Aggregate: agg, Trees: a.Trees, Width: len(columns)}
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("tree ensemble artifact: %w", err)
		}
		p = e
	case KindRemote:
		if a.Endpoint == "" {
			return nil, fmt.Errorf("remote artifact has no endpoint")
		}
		p = NewRemote(a.Endpoint, len(columns), o.httpClient)
	default:
		return nil, fmt.Errorf("unknown artifact kind %q", a.Kind)
	}

	sum := sha1.Sum(data)
	return &Model{
		Predictor: p,
		Info: Info{
			Name:     a.Name,
			Version:  a.Version,
			Kind:     a.Kind,
			Checksum: hex.EncodeToString(sum[:]),
		},
	}, nil
}

func checkFeatures(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("artifact lists %d features, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("artifact feature %d is %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}
