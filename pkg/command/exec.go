package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	semgraph "github.com/vilterp/semgraph/pkg"
)

// Exec parses and runs one statement against store, returning the text to
// show the user: an ack such as "CREATE CLASS 1" for writes, the formatted
// records for reads.
func Exec(store *semgraph.Store, line string) (string, error) {
	stmt, err := Parse(line)
	if err != nil {
		return "", errors.Wrap(err, "parse error")
	}
	switch {
	case stmt.Create != nil:
		return execCreate(store, stmt.Create)
	case stmt.Get != nil:
		return execGet(store, stmt.Get)
	case stmt.Describe != nil:
		id, err := parseID(stmt.Describe.ID)
		if err != nil {
			return "", err
		}
		return store.DescribeInstance(id)
	case stmt.Assert != nil:
		return execAssert(store, stmt.Assert)
	case stmt.Resolve != nil:
		return execResolve(store, stmt.Resolve)
	case stmt.Delete != nil:
		return execDelete(store, stmt.Delete)
	case stmt.List != nil:
		return execList(store, stmt.List)
	}
	return "", errors.New("unknown statement type")
}

func parseID(s string) (semgraph.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad id %q", s)
	}
	return semgraph.ID(id), nil
}

func (r *RefExpr) toRef() (semgraph.Ref, error) {
	if r.Tagged != "" {
		return semgraph.ParseRef(strings.ToUpper(r.Tagged))
	}
	kind, err := semgraph.ParseKind(r.Kind)
	if err != nil {
		return semgraph.Ref{}, err
	}
	id, err := parseID(r.ID)
	if err != nil {
		return semgraph.Ref{}, err
	}
	return semgraph.NewRef(kind, id)
}

func execCreate(store *semgraph.Store, create *Create) (string, error) {
	var (
		id   semgraph.ID
		err  error
		what string
	)
	switch {
	case create.Class != nil:
		what = "CLASS"
		id, err = store.CreateClass(create.Class.Name)
	case create.Property != nil:
		what = "PROPERTY"
		id, err = store.CreateProperty(create.Property.Name, semgraph.PropertyKind(create.Property.Kind))
	case create.Instance != nil:
		what = "INSTANCE"
		var class *semgraph.ID
		if create.Instance.Class != "" {
			classID, parseErr := parseID(create.Instance.Class)
			if parseErr != nil {
				return "", parseErr
			}
			class = &classID
		}
		id, err = store.CreateInstance(create.Instance.Name, class)
	case create.Terminal != nil:
		what = "TERMINAL"
		id, err = store.CreateTerminal(create.Terminal.Value, create.Terminal.Unit)
	default:
		return "", errors.New("unknown CREATE target")
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CREATE %s %d", what, id), nil
}

func execGet(store *semgraph.Store, target *Target) (string, error) {
	id, err := parseID(target.ID)
	if err != nil {
		return "", err
	}
	var record fmt.Stringer
	switch target.Collection {
	case "CLASS":
		record, err = store.GetClass(id)
	case "PROPERTY":
		record, err = store.GetProperty(id)
	case "INSTANCE":
		record, err = store.GetInstance(id)
	case "TERMINAL":
		record, err = store.GetTerminal(id)
	case "TRIPLE":
		record, err = store.GetTriple(id)
	default:
		return "", fmt.Errorf("can't GET %s", target.Collection)
	}
	if err != nil {
		return "", err
	}
	return record.String(), nil
}

func execAssert(store *semgraph.Store, assert *Assert) (string, error) {
	subject, err := assert.Subject.toRef()
	if err != nil {
		return "", err
	}
	predicate, err := parseID(assert.Predicate)
	if err != nil {
		return "", err
	}
	var object *semgraph.Ref
	if assert.Object != nil {
		ref, err := assert.Object.toRef()
		if err != nil {
			return "", err
		}
		object = &ref
	}
	id, err := store.AssertTriple(subject, predicate, object)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ASSERT %d", id), nil
}

func execResolve(store *semgraph.Store, resolve *Resolve) (string, error) {
	id, err := parseID(resolve.TripleID)
	if err != nil {
		return "", err
	}
	triple, err := store.GetTriple(id)
	if err != nil {
		return "", err
	}
	subject, err := store.ResolveSubject(triple)
	if err != nil {
		return "", err
	}
	predicate, err := store.GetProperty(triple.Predicate)
	if err != nil {
		return "", err
	}
	object, err := store.ResolveObject(triple)
	if err != nil {
		return "", err
	}
	objectStr := ""
	if object != nil {
		objectStr = object.String()
	}
	return fmt.Sprintf("subject: %s\npredicate: %s\nobject: %s", subject, predicate, objectStr), nil
}

func execDelete(store *semgraph.Store, target *Target) (string, error) {
	id, err := parseID(target.ID)
	if err != nil {
		return "", err
	}
	switch target.Collection {
	case "CLASS":
		err = store.DeleteClass(id)
	case "PROPERTY":
		err = store.DeleteProperty(id)
	case "INSTANCE":
		err = store.DeleteInstance(id)
	case "TERMINAL":
		err = store.DeleteTerminal(id)
	case "TRIPLE":
		err = store.DeleteTriple(id)
	default:
		return "", fmt.Errorf("can't DELETE %s", target.Collection)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DELETE %s %d", target.Collection, id), nil
}

func execList(store *semgraph.Store, list *List) (string, error) {
	if list.About != nil && list.Collection != "TRIPLES" {
		return "", fmt.Errorf("can't LIST %s ABOUT a reference; only TRIPLES", list.Collection)
	}
	if list.Of != "" && list.Collection != "INSTANCES" {
		return "", fmt.Errorf("can't LIST %s OF a class; only INSTANCES", list.Collection)
	}
	var lines []string
	switch list.Collection {
	case "CLASSES":
		all, err := store.Classes()
		if err != nil {
			return "", err
		}
		for _, class := range all {
			lines = append(lines, class.String())
		}
	case "PROPERTIES":
		all, err := store.Properties()
		if err != nil {
			return "", err
		}
		for _, property := range all {
			lines = append(lines, property.String())
		}
	case "INSTANCES":
		var (
			all []*semgraph.Instance
			err error
		)
		if list.Of != "" {
			classID, parseErr := parseID(list.Of)
			if parseErr != nil {
				return "", parseErr
			}
			all, err = store.InstancesOf(classID)
		} else {
			all, err = store.Instances()
		}
		if err != nil {
			return "", err
		}
		for _, inst := range all {
			lines = append(lines, inst.String())
		}
	case "TERMINALS":
		all, err := store.Terminals()
		if err != nil {
			return "", err
		}
		for _, terminal := range all {
			lines = append(lines, terminal.String())
		}
	case "TRIPLES":
		var (
			all []*semgraph.Triple
			err error
		)
		if list.About != nil {
			ref, refErr := list.About.toRef()
			if refErr != nil {
				return "", refErr
			}
			all, err = store.TriplesAbout(ref)
		} else {
			all, err = store.Triples()
		}
		if err != nil {
			return "", err
		}
		for _, triple := range all {
			lines = append(lines, fmt.Sprintf("%d %s", triple.ID, triple))
		}
	default:
		return "", fmt.Errorf("can't LIST %s", list.Collection)
	}
	return strings.Join(lines, "\n"), nil
}
