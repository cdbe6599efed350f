package semgraph

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// Terminal is a literal value with a unit, e.g. "1200" "kg".
type Terminal struct {
	ID    ID     `json:"id"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

func (t *Terminal) Ref() Ref { return TerminalRef(t.ID) }

func (t *Terminal) String() string {
	return fmt.Sprintf("<id='%d', value='%s', unit='%s'>", t.ID, t.Value, t.Unit)
}

func (s *Store) CreateTerminal(value string, unit string) (ID, error) {
	defer observe(s.metrics.createLatency, time.Now())
	for field, text := range map[string]string{"value": value, "unit": unit} {
		if err := checkText(field, text); err != nil {
			return 0, errors.Wrap(err, "creating terminal")
		}
	}
	var id ID
	err := s.update(func(tx *bolt.Tx) error {
		var err error
		id, err = terminals.insert(tx, func(id ID) interface{} {
			return &Terminal{ID: id, Value: value, Unit: unit}
		})
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "creating terminal")
	}
	clog.Debug(s.op("create_terminal"), "created terminal", zap.Uint64("id", uint64(id)))
	return id, nil
}

func (s *Store) GetTerminal(id ID) (*Terminal, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	terminal := &Terminal{}
	if err := s.view(func(tx *bolt.Tx) error {
		return terminals.get(tx, id, terminal)
	}); err != nil {
		return nil, err
	}
	return terminal, nil
}

func (s *Store) Terminals() ([]*Terminal, error) {
	defer observe(s.metrics.scanLatency, time.Now())
	var result []*Terminal
	err := s.view(func(tx *bolt.Tx) error {
		return terminals.scan(tx, func(_ ID, raw []byte) error {
			terminal := &Terminal{}
			if err := decode(raw, terminal); err != nil {
				return err
			}
			result = append(result, terminal)
			return nil
		})
	})
	return result, err
}
