package errorcode

type Errorcode int

const (
	Success                     Errorcode = 0
	NoPrimitiveFound            Errorcode = 1
	InvalidPolynomialInput      Errorcode = 2
	InvalidCommandLineArguments Errorcode = 3
)
