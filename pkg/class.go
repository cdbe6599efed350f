package semgraph

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// Class is a named type. Names are not unique.
type Class struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func (c *Class) Ref() Ref { return ClassRef(c.ID) }

func (c *Class) String() string {
	return fmt.Sprintf("<id='%d', name='%s'>", c.ID, c.Name)
}

func (s *Store) CreateClass(name string) (ID, error) {
	defer observe(s.metrics.createLatency, time.Now())
	if err := checkText("name", name); err != nil {
		return 0, errors.Wrap(err, "creating class")
	}
	var id ID
	err := s.update(func(tx *bolt.Tx) error {
		var err error
		id, err = classes.insert(tx, func(id ID) interface{} {
			return &Class{ID: id, Name: name}
		})
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "creating class")
	}
	clog.Debug(s.op("create_class"), "created class", zap.Uint64("id", uint64(id)), zap.String("name", name))
	return id, nil
}

func (s *Store) GetClass(id ID) (*Class, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	class := &Class{}
	if err := s.view(func(tx *bolt.Tx) error {
		return classes.get(tx, id, class)
	}); err != nil {
		return nil, err
	}
	return class, nil
}

// Classes returns every class in id order.
func (s *Store) Classes() ([]*Class, error) {
	defer observe(s.metrics.scanLatency, time.Now())
	var result []*Class
	err := s.view(func(tx *bolt.Tx) error {
		return classes.scan(tx, func(_ ID, raw []byte) error {
			class := &Class{}
			if err := decode(raw, class); err != nil {
				return err
			}
			result = append(result, class)
			return nil
		})
	})
	return result, err
}
