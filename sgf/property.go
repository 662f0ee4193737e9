package sgf

// Kind is the closed set of properties the renderer interprets.
// Everything else is kept as Other with its raw identifier and values.
type Kind byte

const (
	Other Kind = iota
	Size
	AddBlack
	AddWhite
	MoveBlack
	MoveWhite
	Comment
)

var kinds = map[string]Kind{
	"SZ": Size,
	"AB": AddBlack,
	"AW": AddWhite,
	"B":  MoveBlack,
	"W":  MoveWhite,
	"C":  Comment,
}

func (k Kind) String() string {
	switch k {
	case Size:
		return "Size"
	case AddBlack:
		return "AddBlack"
	case AddWhite:
		return "AddWhite"
	case MoveBlack:
		return "MoveBlack"
	case MoveWhite:
		return "MoveWhite"
	case Comment:
		return "Comment"
	}
	return "Other"
}

// Property is one identifier with its values, escapes already resolved.
type Property struct {
	Kind   Kind
	ID     string
	Values []string
}

func makeProperty(id string, values []string) Property {
	return Property{Kind: kinds[id], ID: id, Values: values}
}

// Value returns the first value of the property.
func (p Property) Value() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}
