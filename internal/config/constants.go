package config

const SourceFileExt = ".mf"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".mf", ".manyfold"}

// FloatPolicy controls what happens when float arithmetic overflows to
// infinity or an integer operation leaves the int64 range.
type FloatPolicy int

const (
	// PolicySaturate clamps overflowing results to the largest finite value.
	PolicySaturate FloatPolicy = iota
	// PolicyWrap lets integer arithmetic wrap around and maps float
	// overflow to the signed infinity the hardware produced.
	PolicyWrap
	// PolicyFlag reports overflow as a runtime error.
	PolicyFlag
)

var policyNames = map[string]FloatPolicy{
	"saturate": PolicySaturate,
	"wrap":     PolicyWrap,
	"flag":     PolicyFlag,
}

// LookupFloatPolicy resolves a policy name from the CLI flag.
func LookupFloatPolicy(name string) (FloatPolicy, bool) {
	p, ok := policyNames[name]
	return p, ok
}

func (p FloatPolicy) String() string {
	switch p {
	case PolicyWrap:
		return "wrap"
	case PolicyFlag:
		return "flag"
	default:
		return "saturate"
	}
}

// DefaultFloatPolicy applies when no --float-policy flag is given.
const DefaultFloatPolicy = PolicySaturate
