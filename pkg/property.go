package semgraph

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// PropertyKind says what a property links: ABSTRACT properties are
// schema edges between classes, INSTANCE properties link an instance to a
// value.
type PropertyKind string

const (
	PropertyAbstract PropertyKind = "ABSTRACT"
	PropertyInstance PropertyKind = "INSTANCE"
)

func (k PropertyKind) valid() bool {
	return k == PropertyAbstract || k == PropertyInstance
}

// ParsePropertyKind rejects anything but the two recognized kinds.
func ParsePropertyKind(s string) (PropertyKind, error) {
	kind := PropertyKind(s)
	if !kind.valid() {
		return "", &InvalidArgumentError{Field: "property kind", Value: s}
	}
	return kind, nil
}

type Property struct {
	ID   ID           `json:"id"`
	Name string       `json:"name"`
	Kind PropertyKind `json:"type"`
}

func (p *Property) String() string {
	return fmt.Sprintf("<id='%d', name='%s', type_='%s'>", p.ID, p.Name, p.Kind)
}

func (s *Store) CreateProperty(name string, kind PropertyKind) (ID, error) {
	defer observe(s.metrics.createLatency, time.Now())
	if !kind.valid() {
		return 0, errors.Wrap(&InvalidArgumentError{Field: "property kind", Value: string(kind)}, "creating property")
	}
	if err := checkText("name", name); err != nil {
		return 0, errors.Wrap(err, "creating property")
	}
	var id ID
	err := s.update(func(tx *bolt.Tx) error {
		var err error
		id, err = properties.insert(tx, func(id ID) interface{} {
			return &Property{ID: id, Name: name, Kind: kind}
		})
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "creating property")
	}
	clog.Debug(s.op("create_property"), "created property",
		zap.Uint64("id", uint64(id)), zap.String("name", name), zap.String("kind", string(kind)))
	return id, nil
}

func (s *Store) GetProperty(id ID) (*Property, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	property := &Property{}
	if err := s.view(func(tx *bolt.Tx) error {
		return properties.get(tx, id, property)
	}); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *Store) Properties() ([]*Property, error) {
	defer observe(s.metrics.scanLatency, time.Now())
	var result []*Property
	err := s.view(func(tx *bolt.Tx) error {
		return properties.scan(tx, func(_ ID, raw []byte) error {
			property := &Property{}
			if err := decode(raw, property); err != nil {
				return err
			}
			result = append(result, property)
			return nil
		})
	})
	return result, err
}
