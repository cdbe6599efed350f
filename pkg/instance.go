package semgraph

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	clog "github.com/vilterp/semgraph/pkg/log"
	"go.uber.org/zap"
)

// Instance is a named object, optionally typed by a class.
type Instance struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Class *ID    `json:"class_id,omitempty"`
}

func (i *Instance) Ref() Ref { return InstanceRef(i.ID) }

// String prints the class id as stored; use Store.DescribeInstance to get
// the class name.
func (i *Instance) String() string {
	classID := ""
	if i.Class != nil {
		classID = fmt.Sprintf("%d", *i.Class)
	}
	return fmt.Sprintf("<id='%d', name='%s', type_='%s'>", i.ID, i.Name, classID)
}

// CreateInstance creates an instance. If class is non-nil it must name an
// existing class.
func (s *Store) CreateInstance(name string, class *ID) (ID, error) {
	defer observe(s.metrics.createLatency, time.Now())
	if err := checkText("name", name); err != nil {
		return 0, errors.Wrap(err, "creating instance")
	}
	var id ID
	err := s.update(func(tx *bolt.Tx) error {
		if class != nil && !classes.exists(tx, *class) {
			return &DanglingReferenceError{Field: "class", What: classes.name, ID: *class}
		}
		var err error
		id, err = instances.insert(tx, func(id ID) interface{} {
			inst := &Instance{ID: id, Name: name}
			if class != nil {
				classID := *class
				inst.Class = &classID
			}
			return inst
		})
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "creating instance")
	}
	clog.Debug(s.op("create_instance"), "created instance", zap.Uint64("id", uint64(id)), zap.String("name", name))
	return id, nil
}

func (s *Store) GetInstance(id ID) (*Instance, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	inst := &Instance{}
	if err := s.view(func(tx *bolt.Tx) error {
		return instances.get(tx, id, inst)
	}); err != nil {
		return nil, err
	}
	return inst, nil
}

// DescribeInstance formats the instance with its class name resolved.
// Untyped instances print an empty type.
func (s *Store) DescribeInstance(id ID) (string, error) {
	defer observe(s.metrics.lookupLatency, time.Now())
	var description string
	err := s.view(func(tx *bolt.Tx) error {
		inst := &Instance{}
		if err := instances.get(tx, id, inst); err != nil {
			return err
		}
		className := ""
		if inst.Class != nil {
			class := &Class{}
			if err := classes.get(tx, *inst.Class, class); err != nil {
				return err
			}
			className = class.Name
		}
		description = fmt.Sprintf("<id='%d', name='%s', type_='%s'>", inst.ID, inst.Name, className)
		return nil
	})
	return description, err
}

func (s *Store) Instances() ([]*Instance, error) {
	return s.scanInstances(func(*Instance) bool { return true })
}

// InstancesOf returns the instances typed by the given class.
func (s *Store) InstancesOf(class ID) ([]*Instance, error) {
	return s.scanInstances(func(inst *Instance) bool {
		return inst.Class != nil && *inst.Class == class
	})
}

func (s *Store) scanInstances(filter func(*Instance) bool) ([]*Instance, error) {
	defer observe(s.metrics.scanLatency, time.Now())
	var result []*Instance
	err := s.view(func(tx *bolt.Tx) error {
		return instances.scan(tx, func(_ ID, raw []byte) error {
			inst := &Instance{}
			if err := decode(raw, inst); err != nil {
				return err
			}
			if filter(inst) {
				result = append(result, inst)
			}
			return nil
		})
	})
	return result, err
}
