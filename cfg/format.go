package cfg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// statementDoc is the wire shape used by the JSON and YAML encoders.
type statementDoc struct {
	Kind  string `json:"kind"  yaml:"kind"`
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (s *Set) docs() []statementDoc {
	list := s.Statements()
	docs := make([]statementDoc, len(list))

	for i, st := range list {
		docs[i] = statementDoc{
			Kind:  st.Kind.String(),
			Key:   st.Key,
			Value: st.Val,
		}
	}

	return docs
}

// FormatJSON writes the collection to w as a JSON array of
// {kind, key, value} objects in total order. An indent of zero or less
// produces compact output.
func (s *Set) FormatJSON(w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(s.docs(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(s.docs())
	}

	if err != nil {
		return err
	}

	data = append(data, '\n')

	_, err = w.Write(data)

	return err
}

// FormatYAML writes the collection to w as a YAML sequence of
// {kind, key, value} mappings in total order. An indent of zero or less
// selects flow style.
func (s *Set) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption

	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, s.docs(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
