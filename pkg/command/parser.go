package command

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

var (
	// Keywords win over identifiers, so a name spelled like a keyword
	// (Instance, Of...) has to be quoted.
	stmtLexer = lexer.Unquote(lexer.Upper(lexer.Must(lexer.Regexp(`(\s+)`+
		`|(?P<Ref>(?i)\b(?:CLASS|INSTANCE|TERMINAL):\S*)`+
		`|(?P<Keyword>(?i)\b(?:CREATE|GET|ASSERT|RESOLVE|DELETE|LIST|DESCRIBE|CLASSES|CLASS|PROPERTIES|PROPERTY|INSTANCES|INSTANCE|TERMINALS|TERMINAL|TRIPLES|TRIPLE|ABSTRACT|OF|ABOUT)\b)`+
		`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
		`|(?P<Number>[-+]?\d*\.?\d+([eE][-+]?\d+)?)`+
		`|(?P<String>'[^']*'|"[^"]*")`,
	)), "Keyword"), "String")
	stmtParser = participle.MustBuild(&Statement{}, stmtLexer)
)

// Statement is one line of the shell. Every form starts with its own verb.
type Statement struct {
	Create   *Create   `  "CREATE" @@`
	Get      *Target   `| "GET" @@`
	Describe *Describe `| "DESCRIBE" @@`
	Assert   *Assert   `| "ASSERT" @@`
	Resolve  *Resolve  `| "RESOLVE" @@`
	Delete   *Target   `| "DELETE" @@`
	List     *List     `| "LIST" @@`
}

type Create struct {
	Class    *CreateClass    `  "CLASS" @@`
	Property *CreateProperty `| "PROPERTY" @@`
	Instance *CreateInstance `| "INSTANCE" @@`
	Terminal *CreateTerminal `| "TERMINAL" @@`
}

type CreateClass struct {
	Name string `(@Ident | @String)`
}

type CreateProperty struct {
	Name string `(@Ident | @String)`
	Kind string `(@"ABSTRACT" | @"INSTANCE")`
}

type CreateInstance struct {
	Name  string `(@Ident | @String)`
	Class string `[ "OF" @Number ]`
}

type CreateTerminal struct {
	Value string `(@String | @Number | @Ident)`
	Unit  string `(@String | @Ident)`
}

// Target names a single record: CLASS 1, PROPERTY 5, TRIPLE 3...
type Target struct {
	Collection string `(@"CLASS" | @"PROPERTY" | @"INSTANCE" | @"TERMINAL" | @"TRIPLE")`
	ID         string `@Number`
}

type Describe struct {
	ID string `"INSTANCE" @Number`
}

// RefExpr is a tagged reference, written either INSTANCE 10 or INSTANCE:10.
type RefExpr struct {
	Tagged string `  @Ref`
	Kind   string `| (@"CLASS" | @"INSTANCE" | @"TERMINAL")`
	ID     string `  @Number`
}

type Assert struct {
	Subject   *RefExpr `@@`
	Predicate string   `@Number`
	Object    *RefExpr `[ @@ ]`
}

type Resolve struct {
	TripleID string `"TRIPLE" @Number`
}

type List struct {
	Collection string   `(@"CLASSES" | @"PROPERTIES" | @"INSTANCES" | @"TERMINALS" | @"TRIPLES")`
	About      *RefExpr `[ "ABOUT" @@ ]`
	Of         string   `[ "OF" @Number ]`
}

// Parse parses one statement.
func Parse(stmt string) (*Statement, error) {
	result := &Statement{}
	err := stmtParser.ParseString(stmt, result)
	return result, err
}
